package scale

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbenhamou/souschef/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestTotalCookingTime(t *testing.T) {
	r := &domain.Recipe{
		Steps: []domain.Step{
			{Duration: 5},
			{Duration: 12.5},
			{Duration: 0},
		},
	}
	if got := TotalCookingTime(r); got != 17.5 {
		t.Fatalf("TotalCookingTime = %v, want 17.5", got)
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name     string
		original int
		selected int
		want     float64
	}{
		{"double", 2, 4, 2},
		{"halve", 4, 2, 0.5},
		{"identity", 3, 3, 1},
		{"zero baseline falls back to 1", 0, 6, 1},
		{"negative baseline falls back to 1", -2, 6, 1},
		{"zero selection falls back to 1", 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Factor(tt.original, tt.selected); got != tt.want {
				t.Fatalf("Factor(%d, %d) = %v, want %v", tt.original, tt.selected, got, tt.want)
			}
		})
	}
}

func TestQuantityRounding(t *testing.T) {
	// 1/3 scaled by 2 rounds to two decimals.
	if got := Quantity(1.0/3.0, 2); got != 0.67 {
		t.Fatalf("Quantity = %v, want 0.67", got)
	}
	if got := Quantity(0, 5); got != 0 {
		t.Fatalf("zero quantity must stay zero, got %v", got)
	}
}

func TestConsolidateMergesByNameAndUnit(t *testing.T) {
	steps := []domain.Step{
		{Ingredients: []domain.Ingredient{
			{Name: "eggs", Unit: ptr("pcs"), Quantity: ptr(2.0)},
			{Name: "salt"},
		}},
		{Ingredients: []domain.Ingredient{
			{Name: "eggs", Unit: ptr("pcs"), Quantity: ptr(1.0)},
			{Name: "flour", Unit: ptr("g"), Quantity: ptr(100.0)},
		}},
	}

	got := Consolidate(steps)
	want := []Entry{
		{Name: "eggs", Unit: ptr("pcs"), Quantity: 3},
		{Name: "salt", Quantity: 0},
		{Name: "flour", Unit: ptr("g"), Quantity: 100},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Consolidate mismatch (-want +got):\n%s", diff)
	}
}

func TestConsolidateUnitSeparatesEntries(t *testing.T) {
	steps := []domain.Step{
		{Ingredients: []domain.Ingredient{
			{Name: "flour", Unit: ptr("g"), Quantity: ptr(100.0)},
			{Name: "flour", Quantity: ptr(1.0)},
		}},
	}

	got := Consolidate(steps)
	if len(got) != 2 {
		t.Fatalf("same name with different units must not merge, got %d entries", len(got))
	}
}

func TestConsolidateMissingQuantitySumsAsZero(t *testing.T) {
	steps := []domain.Step{
		{Ingredients: []domain.Ingredient{{Name: "pepper"}}},
		{Ingredients: []domain.Ingredient{{Name: "pepper"}}},
	}

	got := Consolidate(steps)
	if len(got) != 1 || got[0].Quantity != 0 {
		t.Fatalf("expected single zero-quantity entry, got %+v", got)
	}
}

func TestConsolidatePreservesFirstMentionOrder(t *testing.T) {
	steps := []domain.Step{
		{Ingredients: []domain.Ingredient{{Name: "c"}, {Name: "a"}}},
		{Ingredients: []domain.Ingredient{{Name: "b"}, {Name: "a"}}},
	}

	got := Consolidate(steps)
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	want := []string{"c", "a", "b"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestShoppingListScalesEntries(t *testing.T) {
	r := &domain.Recipe{
		Servings: 2,
		Steps: []domain.Step{
			{Ingredients: []domain.Ingredient{
				{Name: "eggs", Unit: ptr("pcs"), Quantity: ptr(3.0)},
				{Name: "salt"},
			}},
		},
	}

	got := ShoppingList(r, 4)
	want := []Entry{
		{Name: "eggs", Unit: ptr("pcs"), Quantity: 6},
		{Name: "salt", Quantity: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ShoppingList mismatch (-want +got):\n%s", diff)
	}
}

func TestShoppingListAtBaselineIsUnchanged(t *testing.T) {
	r := &domain.Recipe{
		Servings: 3,
		Steps: []domain.Step{
			{Ingredients: []domain.Ingredient{
				{Name: "rice", Unit: ptr("g"), Quantity: ptr(250.0)},
			}},
		},
	}

	got := ShoppingList(r, 3)
	if got[0].Quantity != 250 {
		t.Fatalf("scaling at the baseline must be a no-op, got %v", got[0].Quantity)
	}
}

func TestIngredientsDoesNotMutateInput(t *testing.T) {
	in := []domain.Ingredient{{Name: "milk", Unit: ptr("ml"), Quantity: ptr(200.0)}}

	out := Ingredients(in, 2, 4)
	if *in[0].Quantity != 200 {
		t.Fatalf("input mutated: %v", *in[0].Quantity)
	}
	if *out[0].Quantity != 400 {
		t.Fatalf("output not scaled: %v", *out[0].Quantity)
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name string
		q    float64
		unit *string
		want string
	}{
		{"zero renders empty", 0, ptr("g"), ""},
		{"with unit", 250, ptr("g"), "250 g"},
		{"without unit", 3, nil, "3"},
		{"empty unit string", 3, ptr(""), "3"},
		{"trailing zeros trimmed", 0.5, ptr("tsp"), "0.5 tsp"},
		{"rounded to two decimals", 0.666, nil, "0.67"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQuantity(tt.q, tt.unit); got != tt.want {
				t.Fatalf("FormatQuantity(%v) = %q, want %q", tt.q, got, tt.want)
			}
		})
	}
}

func TestFormatEntry(t *testing.T) {
	if got := FormatEntry(Entry{Name: "salt"}); got != "salt" {
		t.Fatalf("bare entry = %q, want %q", got, "salt")
	}
	if got := FormatEntry(Entry{Name: "eggs", Unit: ptr("pcs"), Quantity: 6}); got != "6 pcs eggs" {
		t.Fatalf("entry = %q, want %q", got, "6 pcs eggs")
	}
}

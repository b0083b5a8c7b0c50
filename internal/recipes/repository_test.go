package recipes

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/kv"
	"github.com/kbenhamou/souschef/internal/logger"
)

func newTestRepo(t *testing.T) (*Repository, *kv.MemStore) {
	t.Helper()
	store := kv.NewMemStore()
	log := logger.New(logger.LevelOff, io.Discard)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := New(store, log, WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	return repo, store
}

func draftRecipe(title string) domain.Recipe {
	qty := 2.0
	unit := "pcs"
	return domain.Recipe{
		Title:    title,
		Servings: 2,
		Category: domain.CategoryDinner,
		Steps: []domain.Step{
			{
				Name:        "Prep",
				Description: "Crack the eggs",
				Duration:    5,
				Ingredients: []domain.Ingredient{
					{Name: "eggs", Unit: &unit, Quantity: &qty},
				},
			},
		},
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, draftRecipe("Omelette"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected CreatedAt == UpdatedAt, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after Create failed: %v", err)
	}
	if got.Title != "Omelette" {
		t.Fatalf("expected title round-trip, got %q", got.Title)
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	store := kv.NewMemStore()
	log := logger.New(logger.LevelOff, io.Discard)
	// Frozen clock forces an ID collision on every call.
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := New(store, log, WithClock(func() time.Time { return frozen }))
	ctx := context.Background()

	a, err := repo.Create(ctx, draftRecipe("A"))
	if err != nil {
		t.Fatalf("Create A failed: %v", err)
	}
	b, err := repo.Create(ctx, draftRecipe("B"))
	if err != nil {
		t.Fatalf("Create B failed: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct IDs, both got %s", a.ID)
	}
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.Recipe)
	}{
		{"empty title", func(r *domain.Recipe) { r.Title = "" }},
		{"zero servings", func(r *domain.Recipe) { r.Servings = 0 }},
		{"bad category", func(r *domain.Recipe) { r.Category = "brunch" }},
		{"no steps", func(r *domain.Recipe) { r.Steps = nil }},
		{"negative duration", func(r *domain.Recipe) { r.Steps[0].Duration = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := draftRecipe("Bad")
			tt.mutate(&draft)
			if _, err := repo.Create(ctx, draft); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestListAllEmptyStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll on empty store failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty slice, got %d recipes", len(all))
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, draftRecipe("Omelette"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	title := "French Omelette"
	servings := 4
	updated, err := repo.Update(ctx, created.ID, Patch{Title: &title, Servings: &servings})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "French Omelette" || updated.Servings != 4 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Description != created.Description || updated.Category != created.Category {
		t.Fatal("untouched fields changed")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("expected UpdatedAt to be refreshed")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("CreatedAt must not change on update")
	}
}

func TestUpdateRenumbersSteps(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, draftRecipe("Omelette"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	steps := []domain.Step{
		{Name: "B", Order: 99, Description: "second", Duration: 1},
		{Name: "A", Order: 0, Description: "first", Duration: 1},
	}
	updated, err := repo.Update(ctx, created.ID, Patch{Steps: steps})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	for i, s := range updated.Steps {
		if s.Order != i+1 {
			t.Fatalf("step %d has order %d, want %d", i, s.Order, i+1)
		}
	}
}

func TestUpdateMissingRecipe(t *testing.T) {
	repo, _ := newTestRepo(t)

	title := "X"
	_, err := repo.Update(context.Background(), "nope", Patch{Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, draftRecipe("Omelette"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, draftRecipe("Omelette"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	on, err := repo.ToggleFavorite(ctx, created.ID)
	if err != nil || !on {
		t.Fatalf("first toggle: got (%t, %v), want (true, nil)", on, err)
	}
	off, err := repo.ToggleFavorite(ctx, created.ID)
	if err != nil || off {
		t.Fatalf("second toggle: got (%t, %v), want (false, nil)", off, err)
	}

	if _, err := repo.ToggleFavorite(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing recipe, got %v", err)
	}
}

func TestListFavorites(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a, _ := repo.Create(ctx, draftRecipe("A"))
	if _, err := repo.Create(ctx, draftRecipe("B")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.ToggleFavorite(ctx, a.ID); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}

	favs, err := repo.ListFavorites(ctx)
	if err != nil {
		t.Fatalf("ListFavorites failed: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != a.ID {
		t.Fatalf("expected only recipe A, got %+v", favs)
	}
}

func TestWriteFailureLeavesStoreUntouched(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, draftRecipe("Omelette"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	store.FailWrites = true
	title := "Changed"
	if _, err := repo.Update(ctx, created.ID, Patch{Title: &title}); err == nil {
		t.Fatal("expected write failure to surface")
	}
	store.FailWrites = false

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Omelette" {
		t.Fatalf("store mutated despite failed write: %q", got.Title)
	}
}

// Package scale holds the pure quantity math: serving-based rescaling,
// cross-step ingredient consolidation, and display formatting. Nothing in
// here touches storage or the clock.
package scale

import (
	"math"
	"strconv"

	"github.com/kbenhamou/souschef/internal/domain"
)

// NoUnitKey stands in for an absent unit when building merge keys, so
// "flour" with no unit never merges with "flour, grams".
const NoUnitKey = "no-unit"

// Entry is one line of a consolidated ingredient list. Quantity is the sum
// over every step that mentions the ingredient; a zero quantity means no
// step carried a number for it ("to taste").
type Entry struct {
	Name     string
	Unit     *string
	Quantity float64
}

// TotalCookingTime sums the step durations, in minutes.
func TotalCookingTime(r *domain.Recipe) float64 {
	var total float64
	for _, s := range r.Steps {
		total += s.Duration
	}
	return total
}

// Factor returns the multiplier that converts baseline quantities to the
// selected serving count. A non-positive baseline cannot be scaled against
// and yields 1, leaving quantities untouched.
func Factor(originalServings, selectedServings int) float64 {
	if originalServings <= 0 || selectedServings <= 0 {
		return 1
	}
	return float64(selectedServings) / float64(originalServings)
}

// Quantity scales a single quantity by factor, rounded to two decimals.
// Zero stays zero regardless of factor.
func Quantity(q, factor float64) float64 {
	if q == 0 {
		return 0
	}
	return round2(q * factor)
}

// Consolidate merges the ingredients of every step into one list. Two
// mentions merge when both name and unit match; the merged quantity is the
// sum of all mentioned quantities, with absent ones counting as zero.
// Entries appear in first-mention order.
func Consolidate(steps []domain.Step) []Entry {
	index := make(map[string]int)
	var out []Entry

	for _, step := range steps {
		for _, ing := range step.Ingredients {
			key := mergeKey(ing)
			if i, ok := index[key]; ok {
				out[i].Quantity += quantityOf(ing)
				continue
			}
			index[key] = len(out)
			out = append(out, Entry{
				Name:     ing.Name,
				Unit:     ing.Unit,
				Quantity: quantityOf(ing),
			})
		}
	}
	return out
}

// ShoppingList consolidates the recipe's ingredients and scales each entry
// to the selected serving count.
func ShoppingList(r *domain.Recipe, selectedServings int) []Entry {
	factor := Factor(r.Servings, selectedServings)
	entries := Consolidate(r.Steps)
	for i := range entries {
		entries[i].Quantity = Quantity(entries[i].Quantity, factor)
	}
	return entries
}

// Ingredients scales one step's ingredient list to the selected serving
// count, leaving the input untouched. Used by the step walkthrough, which
// shows per-step quantities rather than the consolidated list.
func Ingredients(ings []domain.Ingredient, originalServings, selectedServings int) []domain.Ingredient {
	factor := Factor(originalServings, selectedServings)
	out := make([]domain.Ingredient, len(ings))
	for i, ing := range ings {
		out[i] = ing
		if ing.Quantity != nil && *ing.Quantity != 0 {
			q := Quantity(*ing.Quantity, factor)
			out[i].Quantity = &q
		}
	}
	return out
}

// FormatQuantity renders a quantity with its optional unit for display.
// A zero quantity renders as the empty string so "to taste" ingredients
// show a bare name.
func FormatQuantity(q float64, unit *string) string {
	if q == 0 {
		return ""
	}
	s := strconv.FormatFloat(round2(q), 'f', -1, 64)
	if unit != nil && *unit != "" {
		return s + " " + *unit
	}
	return s
}

// FormatEntry renders a consolidated entry as "name" or "quantity unit name".
func FormatEntry(e Entry) string {
	qty := FormatQuantity(e.Quantity, e.Unit)
	if qty == "" {
		return e.Name
	}
	return qty + " " + e.Name
}

func mergeKey(ing domain.Ingredient) string {
	unit := NoUnitKey
	if ing.Unit != nil && *ing.Unit != "" {
		unit = *ing.Unit
	}
	return ing.Name + "-" + unit
}

func quantityOf(ing domain.Ingredient) float64 {
	if ing.Quantity == nil {
		return 0
	}
	return *ing.Quantity
}

func round2(q float64) float64 {
	return math.Round(q*100) / 100
}

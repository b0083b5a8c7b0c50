// Package domain defines the core types and interfaces for the recipe
// manager. All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Recipe is the central persisted entity. Stored quantities assume the
// baseline Servings count; cooking mode rescales them on the fly.
type Recipe struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Servings    int       `json:"servings"`
	Category    Category  `json:"category"`
	Img         string    `json:"img,omitempty"`
	IsFavorite  bool      `json:"isFavorite"`
	Steps       []Step    `json:"steps"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Step is owned exclusively by its Recipe. Order is 1-based and must match
// the step's position in the owning slice; Renumber restores the invariant
// after inserts and removals.
type Step struct {
	Name        string       `json:"name"`
	Order       int          `json:"order"`
	Description string       `json:"description"`
	Duration    float64      `json:"duration"` // minutes
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is owned exclusively by its Step. Unit and Quantity are
// pointers so that "absent" survives a JSON round-trip: a missing unit
// merges under the "no-unit" key, a missing quantity sums as zero but
// renders as empty.
type Ingredient struct {
	Name     string   `json:"name"`
	Unit     *string  `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// Category is the closed recipe category enumeration.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnack     Category = "snack"
	CategoryDessert   Category = "dessert"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert:
		return true
	}
	return false
}

// Validate checks the invariants a recipe must satisfy before it may be
// persisted: non-empty title, a valid category, positive servings, at least
// one step, and every step well-formed.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, r.Category)
	}
	if r.Servings <= 0 {
		return fmt.Errorf("%w: servings must be positive, got %d", ErrValidation, r.Servings)
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("%w: recipe needs at least one step", ErrValidation)
	}
	for i, s := range r.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: step name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("%w: step description must not be empty", ErrValidation)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: step duration must not be negative", ErrValidation)
	}
	for _, ing := range s.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("%w: ingredient name must not be empty", ErrValidation)
		}
		if ing.Quantity != nil && *ing.Quantity < 0 {
			return fmt.Errorf("%w: ingredient quantity must not be negative", ErrValidation)
		}
	}
	return nil
}

// Renumber rewrites step Order fields to the contiguous 1..N sequence
// matching slice position. Call after any insert or removal.
func (r *Recipe) Renumber() {
	for i := range r.Steps {
		r.Steps[i].Order = i + 1
	}
}

// Clone returns a deep copy of the recipe. Cooking mode works on a snapshot
// so an edit mid-session never changes the steps under the cook's feet.
func (r *Recipe) Clone() *Recipe {
	cp := *r
	cp.Steps = make([]Step, len(r.Steps))
	for i, s := range r.Steps {
		sc := s
		sc.Ingredients = make([]Ingredient, len(s.Ingredients))
		for j, ing := range s.Ingredients {
			ic := ing
			if ing.Unit != nil {
				u := *ing.Unit
				ic.Unit = &u
			}
			if ing.Quantity != nil {
				q := *ing.Quantity
				ic.Quantity = &q
			}
			sc.Ingredients[j] = ic
		}
		cp.Steps[i] = sc
	}
	return &cp
}

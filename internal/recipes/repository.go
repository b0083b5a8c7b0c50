// Package recipes implements the recipe repository: CRUD over the recipe
// collection persisted as a single JSON array in the key-value store.
package recipes

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
)

// StorageKey is the key the whole recipe array lives under.
const StorageKey = "recipes"

// Repository provides CRUD access to the recipe collection. Every mutation
// is a full read-modify-write of the persisted array; a mutex serializes
// mutations so two rapid operations cannot clobber each other's write.
type Repository struct {
	mu    sync.Mutex
	store domain.KV
	log   *logger.Logger
	now   func() time.Time
}

// Option configures the repository.
type Option func(*Repository)

// WithClock overrides the time source. Tests use this to get deterministic
// IDs and timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// New creates a repository backed by the given store.
func New(store domain.KV, log *logger.Logger, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListAll returns every stored recipe. An empty store yields an empty
// slice, not an error.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := r.store.Get(ctx, StorageKey, &out)
	if err == domain.ErrNotFound {
		return []domain.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	if out == nil {
		out = []domain.Recipe{}
	}
	r.log.Debug("listed %d recipes", len(out))
	return out, nil
}

// ListFavorites returns the stored recipes flagged as favorites.
func (r *Repository) ListFavorites(ctx context.Context) ([]domain.Recipe, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(rec domain.Recipe, _ int) bool { return rec.IsFavorite }), nil
}

// Get returns a single recipe by ID.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create validates the draft, assigns ID and timestamps, appends it to the
// collection, and persists. The draft's ID/CreatedAt/UpdatedAt fields are
// ignored.
func (r *Repository) Create(ctx context.Context, draft domain.Recipe) (*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft.Renumber()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	draft.ID = r.newID(all)
	draft.CreatedAt = now
	draft.UpdatedAt = now

	all = append(all, draft)
	if err := r.store.Set(ctx, StorageKey, all); err != nil {
		return nil, fmt.Errorf("saving recipes: %w", err)
	}

	r.log.Info("created recipe %s (%q)", draft.ID, draft.Title)
	return &draft, nil
}

// Patch holds the partial fields an Update merges over an existing recipe.
// Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Servings    *int
	Category    *domain.Category
	Img         *string
	IsFavorite  *bool
	Steps       []domain.Step
}

// Update merges the patch over the stored recipe, refreshes UpdatedAt, and
// persists. Returns domain.ErrNotFound when no recipe has the given ID.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) (*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	rec := all[idx]
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	if patch.Servings != nil {
		rec.Servings = *patch.Servings
	}
	if patch.Category != nil {
		rec.Category = *patch.Category
	}
	if patch.Img != nil {
		rec.Img = *patch.Img
	}
	if patch.IsFavorite != nil {
		rec.IsFavorite = *patch.IsFavorite
	}
	if patch.Steps != nil {
		rec.Steps = patch.Steps
	}
	rec.Renumber()
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	rec.UpdatedAt = r.now()

	all[idx] = rec
	if err := r.store.Set(ctx, StorageKey, all); err != nil {
		return nil, fmt.Errorf("saving recipes: %w", err)
	}

	r.log.Info("updated recipe %s", id)
	return &rec, nil
}

// Delete removes the recipe from the collection. Returns
// domain.ErrNotFound when no recipe has the given ID; deletion is
// immediate and irreversible.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.ListAll(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(all, id)
	if idx < 0 {
		return domain.ErrNotFound
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := r.store.Set(ctx, StorageKey, all); err != nil {
		return fmt.Errorf("saving recipes: %w", err)
	}

	r.log.Info("deleted recipe %s", id)
	return nil
}

// ToggleFavorite flips the favorite flag and refreshes UpdatedAt. Returns
// the new flag value, or domain.ErrNotFound when no recipe matches.
func (r *Repository) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.ListAll(ctx)
	if err != nil {
		return false, err
	}

	idx := indexOf(all, id)
	if idx < 0 {
		return false, domain.ErrNotFound
	}

	all[idx].IsFavorite = !all[idx].IsFavorite
	all[idx].UpdatedAt = r.now()
	if err := r.store.Set(ctx, StorageKey, all); err != nil {
		return false, fmt.Errorf("saving recipes: %w", err)
	}

	r.log.Info("recipe %s favorite=%t", id, all[idx].IsFavorite)
	return all[idx].IsFavorite, nil
}

// newID derives an ID from the current clock, bumping until it is unique
// within the collection. Millisecond timestamps are unique enough for a
// single user adding recipes by hand.
func (r *Repository) newID(existing []domain.Recipe) string {
	ms := r.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if indexOf(existing, id) < 0 {
			return id
		}
		ms++
	}
}

func indexOf(all []domain.Recipe, id string) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}

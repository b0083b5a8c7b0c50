// Package appearance persists the user's theme preferences. The settings
// record is independent of the recipe collection and is read-degrading: a
// broken or missing record yields the defaults rather than an error.
package appearance

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/logger"
	"github.com/kbenhamou/souschef/internal/theme"
)

// StorageKey is the key the settings record lives under.
const StorageKey = "appearance_settings"

// Defaults returns the settings used before the user ever saves any.
func Defaults() domain.AppearanceSettings {
	return domain.AppearanceSettings{
		ThemeMode:        domain.ThemeCatppuccin,
		CatppuccinAccent: theme.DefaultAccent,
	}
}

// Store reads and writes the appearance settings record.
type Store struct {
	mu    sync.Mutex
	store domain.KV
	log   *logger.Logger
}

// New creates a settings store backed by the given key-value store.
func New(store domain.KV, log *logger.Logger) *Store {
	return &Store{store: store, log: log}
}

// Get returns the current settings. A missing or unreadable record yields
// the defaults; reads never fail.
func (s *Store) Get(ctx context.Context) domain.AppearanceSettings {
	var settings domain.AppearanceSettings
	err := s.store.Get(ctx, StorageKey, &settings)
	if err == domain.ErrNotFound {
		return Defaults()
	}
	if err != nil {
		s.log.Warn("appearance settings unreadable, using defaults: %v", err)
		return Defaults()
	}
	return settings
}

// Patch holds the fields a Save merges over the current settings. Nil
// fields are left untouched.
type Patch struct {
	ThemeMode        *domain.ThemeMode
	CatppuccinAccent *string
}

// Save merges the patch over the current settings and persists the result.
func (s *Store) Save(ctx context.Context, patch Patch) (domain.AppearanceSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.Get(ctx)
	if patch.ThemeMode != nil {
		if !patch.ThemeMode.Valid() {
			return settings, fmt.Errorf("%w: unknown theme mode %q", domain.ErrValidation, *patch.ThemeMode)
		}
		settings.ThemeMode = *patch.ThemeMode
	}
	if patch.CatppuccinAccent != nil {
		if !theme.ValidAccent(*patch.CatppuccinAccent) {
			return settings, fmt.Errorf("%w: unknown accent %q", domain.ErrValidation, *patch.CatppuccinAccent)
		}
		settings.CatppuccinAccent = *patch.CatppuccinAccent
	}

	if err := s.store.Set(ctx, StorageKey, settings); err != nil {
		return settings, fmt.Errorf("saving appearance settings: %w", err)
	}
	s.log.Info("appearance settings saved: mode=%s accent=%s", settings.ThemeMode, settings.CatppuccinAccent)
	return settings, nil
}

// SetAccent selects a Catppuccin accent. Choosing an accent also switches
// the mode to catppuccin so the choice is visible immediately.
func (s *Store) SetAccent(ctx context.Context, accent string) (domain.AppearanceSettings, error) {
	mode := domain.ThemeCatppuccin
	return s.Save(ctx, Patch{ThemeMode: &mode, CatppuccinAccent: &accent})
}

// SetMode switches the palette family without touching the stored accent.
func (s *Store) SetMode(ctx context.Context, mode domain.ThemeMode) (domain.AppearanceSettings, error) {
	return s.Save(ctx, Patch{ThemeMode: &mode})
}

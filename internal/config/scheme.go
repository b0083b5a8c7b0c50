package config

import "github.com/kbenhamou/souschef/internal/domain"

// schemeSource serves the configured host colors for both dark flags.
// Terminal config carries a single palette, unlike platforms that provide
// separate light and dark variants.
type schemeSource struct {
	scheme domain.Scheme
}

func (s schemeSource) Scheme(dark bool) domain.Scheme { return s.scheme }

// Source adapts the configured scheme to the resolver's capability port.
// Returns nil when the scheme is incomplete, which the resolver treats as
// the capability being absent.
func (s SystemSchemeConfig) Source() domain.SchemeSource {
	if !s.Present() {
		return nil
	}
	return schemeSource{scheme: domain.Scheme{
		Primary:          s.Primary,
		Secondary:        s.Secondary,
		Tertiary:         s.Tertiary,
		Surface:          s.Surface,
		OnSurface:        s.OnSurface,
		Background:       s.Background,
		SurfaceContainer: s.SurfaceContainer,
	}}
}

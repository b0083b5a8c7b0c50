package domain

// ThemeMode selects which palette family the theme resolver uses.
type ThemeMode string

const (
	// ThemeSystem follows the platform color scheme when one is available,
	// falling back to the Nothing palette otherwise.
	ThemeSystem ThemeMode = "system"
	// ThemeCatppuccin uses the Catppuccin Latte/Mocha palettes.
	ThemeCatppuccin ThemeMode = "catppuccin"
	// ThemeNothing uses the monochrome Nothing palette with its fixed red
	// primary.
	ThemeNothing ThemeMode = "nothing"
)

// Valid reports whether m is a known theme mode.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeSystem, ThemeCatppuccin, ThemeNothing:
		return true
	}
	return false
}

// AppearanceSettings is the single persisted appearance record. It lives
// independently of the recipe collection.
type AppearanceSettings struct {
	ThemeMode        ThemeMode `json:"themeMode"`
	CatppuccinAccent string    `json:"catppuccinAccent"`
}

// Package theme resolves appearance settings into a concrete color set.
// Resolution is a pure function: every mode and dark flag combination
// yields a fully populated Colors value, never an error.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/kbenhamou/souschef/internal/domain"
)

// Colors is the resolved token set every view styles itself from.
type Colors struct {
	Primary   string
	Secondary string
	Tertiary  string
	Surface   string
	OnSurface string
	Base      string
	Mantle    string
	Crust     string
	Text      string
	Subtext0  string
	Subtext1  string
}

// DefaultAccent is used when the configured accent name is unknown.
const DefaultAccent = "mauve"

type catppuccinPalette struct {
	base, mantle, crust      string
	text, subtext0, subtext1 string
	surface, onSurface       string
	accents                  map[string]string
}

var catppuccinLatte = catppuccinPalette{
	base:      "#eff1f5",
	mantle:    "#e6e9ef",
	crust:     "#dce0e8",
	text:      "#4c4f69",
	subtext0:  "#6c6f85",
	subtext1:  "#5c5f77",
	surface:   "#ccd0da",
	onSurface: "#4c4f69",
	accents: map[string]string{
		"rosewater": "#dc8a78",
		"flamingo":  "#dd7878",
		"pink":      "#ea76cb",
		"mauve":     "#8839ef",
		"red":       "#d20f39",
		"maroon":    "#e64553",
		"peach":     "#fe640b",
		"yellow":    "#df8e1d",
		"green":     "#40a02b",
		"teal":      "#179299",
		"sky":       "#04a5e5",
		"sapphire":  "#209fb5",
		"blue":      "#1e66f5",
		"lavender":  "#7287fd",
	},
}

var catppuccinMocha = catppuccinPalette{
	base:      "#1e1e2e",
	mantle:    "#181825",
	crust:     "#11111b",
	text:      "#cdd6f4",
	subtext0:  "#a6adc8",
	subtext1:  "#bac2de",
	surface:   "#313244",
	onSurface: "#cdd6f4",
	accents: map[string]string{
		"rosewater": "#f5e0dc",
		"flamingo":  "#f2cdcd",
		"pink":      "#f5c2e7",
		"mauve":     "#cba6f7",
		"red":       "#f38ba8",
		"maroon":    "#eba0ac",
		"peach":     "#fab387",
		"yellow":    "#f9e2af",
		"green":     "#a6e3a1",
		"teal":      "#94e2d5",
		"sky":       "#89dceb",
		"sapphire":  "#74c7ec",
		"blue":      "#89b4fa",
		"lavender":  "#b4befe",
	},
}

type nothingPalette struct {
	base, mantle, crust      string
	text, subtext0, subtext1 string
	surface, onSurface       string
	primary                  string
}

var nothingLight = nothingPalette{
	base:      "#FFFFFF",
	mantle:    "#F5F5F5",
	crust:     "#E5E5E5",
	text:      "#1C1C1C",
	subtext0:  "#525252",
	subtext1:  "#404040",
	surface:   "#F9F9F9",
	onSurface: "#1C1C1C",
	primary:   "#C8102E",
}

var nothingDark = nothingPalette{
	base:      "#000000",
	mantle:    "#0A0A0A",
	crust:     "#141414",
	text:      "#E5E5E5",
	subtext0:  "#A3A3A3",
	subtext1:  "#D4D4D4",
	surface:   "#1C1C1C",
	onSurface: "#E5E5E5",
	primary:   "#C8102E",
}

// AccentOption pairs a display label with the accent key stored in settings.
type AccentOption struct {
	Name  string
	Value string
}

// AccentOptions lists the selectable accents in display order.
func AccentOptions() []AccentOption {
	return []AccentOption{
		{"Rosewater", "rosewater"},
		{"Flamingo", "flamingo"},
		{"Pink", "pink"},
		{"Mauve", "mauve"},
		{"Red", "red"},
		{"Maroon", "maroon"},
		{"Peach", "peach"},
		{"Yellow", "yellow"},
		{"Green", "green"},
		{"Teal", "teal"},
		{"Sky", "sky"},
		{"Sapphire", "sapphire"},
		{"Blue", "blue"},
		{"Lavender", "lavender"},
	}
}

// ValidAccent reports whether name is a selectable accent key.
func ValidAccent(name string) bool {
	_, ok := catppuccinMocha.accents[name]
	return ok
}

// Resolve maps settings onto a concrete color set. The source argument is
// the optional host palette backing system mode; when it is nil, system
// mode falls back to the Nothing palette so resolution stays total.
func Resolve(settings domain.AppearanceSettings, dark bool, source domain.SchemeSource) Colors {
	switch settings.ThemeMode {
	case domain.ThemeSystem:
		if source != nil {
			return system(source.Scheme(dark), dark)
		}
		return nothing(dark)
	case domain.ThemeCatppuccin:
		return catppuccin(dark, settings.CatppuccinAccent)
	default:
		return nothing(dark)
	}
}

func catppuccin(dark bool, accentKey string) Colors {
	p := catppuccinLatte
	if dark {
		p = catppuccinMocha
	}
	accent, ok := p.accents[accentKey]
	if !ok {
		accent = p.accents[DefaultAccent]
	}

	tertiary := p.mantle
	if dark {
		tertiary = p.surface
	}
	return Colors{
		Primary:   accent,
		Secondary: p.surface,
		Tertiary:  tertiary,
		Surface:   p.surface,
		OnSurface: p.text,
		Base:      p.base,
		Mantle:    p.mantle,
		Crust:     p.crust,
		Text:      p.text,
		Subtext0:  p.subtext0,
		Subtext1:  p.subtext1,
	}
}

func nothing(dark bool) Colors {
	p := nothingLight
	shift := 20
	if dark {
		p = nothingDark
		shift = -20
	}
	return Colors{
		Primary:   p.primary,
		Secondary: adjustBrightness(p.primary, shift),
		Tertiary:  adjustBrightness(p.primary, 2*shift),
		Surface:   p.surface,
		OnSurface: p.onSurface,
		Base:      p.base,
		Mantle:    p.mantle,
		Crust:     p.crust,
		Text:      p.text,
		Subtext0:  p.subtext0,
		Subtext1:  p.subtext1,
	}
}

func system(s domain.Scheme, dark bool) Colors {
	c := Colors{
		Primary:   s.Primary,
		Secondary: s.Secondary,
		Tertiary:  s.Tertiary,
		Surface:   s.Surface,
		OnSurface: s.OnSurface,
	}
	if dark {
		c.Base = "#1C1C1C"
		c.Mantle = "#0F0F0F"
		c.Crust = "#141414"
		c.Text = "#E5E5E5"
		c.Subtext0 = "#A3A3A3"
		c.Subtext1 = "#D4D4D4"
	} else {
		c.Base = "#FFFFFF"
		c.Mantle = "#F5F5F5"
		c.Crust = "#E5E5E5"
		c.Text = "#1C1C1C"
		c.Subtext0 = "#525252"
		c.Subtext1 = "#404040"
	}
	return c
}

// adjustBrightness shifts every RGB channel by amount (in 0..255 units),
// clamping at the channel bounds. Unparseable input comes back unchanged.
func adjustBrightness(hex string, amount int) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	d := float64(amount) / 255.0
	shifted := colorful.Color{R: c.R + d, G: c.G + d, B: c.B + d}.Clamped()
	return shifted.Hex()
}

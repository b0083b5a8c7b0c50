// Package config holds runtime configuration, populated from
// .souschef.yaml, SOUSCHEF_* env vars, and CLI flags.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SystemSchemeConfig carries a host-provided color scheme. When every
// field is set, system theme mode maps these colors onto the app tokens;
// otherwise the capability counts as absent.
type SystemSchemeConfig struct {
	Primary          string `mapstructure:"primary"`
	Secondary        string `mapstructure:"secondary"`
	Tertiary         string `mapstructure:"tertiary"`
	Surface          string `mapstructure:"surface"`
	OnSurface        string `mapstructure:"on_surface"`
	Background       string `mapstructure:"background"`
	SurfaceContainer string `mapstructure:"surface_container"`
}

// Present reports whether the scheme carries the fields the resolver needs.
func (s SystemSchemeConfig) Present() bool {
	return s.Primary != "" && s.Secondary != "" && s.Tertiary != "" &&
		s.Surface != "" && s.OnSurface != ""
}

// Config holds all runtime configuration.
type Config struct {
	DataDir      string             `mapstructure:"data_dir"`
	LogLevel     string             `mapstructure:"log_level"`
	LogFile      string             `mapstructure:"log_file"` // "stderr" logs to console
	Dark         string             `mapstructure:"dark"`     // "auto", "on", or "off"
	ChimeEnabled bool               `mapstructure:"chime_enabled"`
	SystemScheme SystemSchemeConfig `mapstructure:"system_scheme"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("log_level", "normal")
	viper.SetDefault("log_file", filepath.Join(defaultDataDir(), "souschef.log"))
	viper.SetDefault("dark", "auto")
	viper.SetDefault("chime_enabled", true)
	viper.SetDefault("system_scheme.primary", "")
	viper.SetDefault("system_scheme.secondary", "")
	viper.SetDefault("system_scheme.tertiary", "")
	viper.SetDefault("system_scheme.surface", "")
	viper.SetDefault("system_scheme.on_surface", "")
	viper.SetDefault("system_scheme.background", "")
	viper.SetDefault("system_scheme.surface_container", "")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".souschef"
	}
	return filepath.Join(home, ".souschef")
}

package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	cfg := Load()

	if cfg.DataDir == "" {
		t.Fatal("default data dir is empty")
	}
	if cfg.LogLevel != "normal" {
		t.Fatalf("default log level = %q", cfg.LogLevel)
	}
	if cfg.Dark != "auto" {
		t.Fatalf("default dark = %q", cfg.Dark)
	}
	if !cfg.ChimeEnabled {
		t.Fatal("chime should default to enabled")
	}
	if cfg.SystemScheme.Present() {
		t.Fatal("system scheme should default to absent")
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("data_dir", "/tmp/souschef-test")
	viper.Set("log_level", "verbose")
	viper.Set("system_scheme.primary", "#112233")
	defer viper.Reset()

	cfg := Load()
	if cfg.DataDir != "/tmp/souschef-test" {
		t.Fatalf("data dir override not applied: %q", cfg.DataDir)
	}
	if cfg.LogLevel != "verbose" {
		t.Fatalf("log level override not applied: %q", cfg.LogLevel)
	}
	// A partial scheme is still absent.
	if cfg.SystemScheme.Present() {
		t.Fatal("partial scheme must not count as present")
	}
}

func TestSchemeSource(t *testing.T) {
	var s SystemSchemeConfig
	if s.Source() != nil {
		t.Fatal("empty scheme must yield a nil source")
	}

	s = SystemSchemeConfig{
		Primary:   "#112233",
		Secondary: "#223344",
		Tertiary:  "#334455",
		Surface:   "#445566",
		OnSurface: "#556677",
	}
	src := s.Source()
	if src == nil {
		t.Fatal("complete scheme must yield a source")
	}
	if got := src.Scheme(true); got.Primary != "#112233" {
		t.Fatalf("scheme not carried through: %+v", got)
	}
}

package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbenhamou/souschef/internal/appearance"
	"github.com/kbenhamou/souschef/internal/chime"
	"github.com/kbenhamou/souschef/internal/config"
	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/kv"
	"github.com/kbenhamou/souschef/internal/logger"
	"github.com/kbenhamou/souschef/internal/recipes"
	"github.com/kbenhamou/souschef/internal/theme"
	"github.com/kbenhamou/souschef/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "souschef",
	Short: "Offline recipe manager and cooking companion",
	Long: `Souschef keeps your recipes on this device and walks you through
cooking them: pick a serving count, check the consolidated ingredient
list, then follow the steps with a countdown timer per step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(tui.RenderBanner(mustApp(cmd).styles.Header))
		return cmd.Help()
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .souschef.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "disable all logging")
	rootCmd.PersistentFlags().String("data-dir", "", "directory recipes and settings are stored in")
	rootCmd.PersistentFlags().String("dark", "", "dark background: auto, on, or off")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".souschef")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SOUSCHEF")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	if v, _ := rootCmd.Flags().GetBool("verbose"); v {
		viper.Set("log_level", "verbose")
	}
	if q, _ := rootCmd.Flags().GetBool("quiet"); q {
		viper.Set("log_level", "off")
	}
	if dir, _ := rootCmd.Flags().GetString("data-dir"); dir != "" {
		viper.Set("data_dir", dir)
	}
	if dark, _ := rootCmd.Flags().GetString("dark"); dark != "" {
		viper.Set("dark", dark)
	}
}

// app bundles the wired dependencies every command works against.
type app struct {
	cfg        config.Config
	log        *logger.Logger
	repo       *recipes.Repository
	appearance *appearance.Store
	colors     theme.Colors
	styles     tui.Styles
	notifier   domain.Notifier
	player     *chime.Player // nil when audio is unavailable

	logFile *os.File
}

// newApp wires the application from config. Commands call this once at
// the top of their RunE.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg := config.Load()

	// Direct logs to a file by default so command output stays clean.
	var logOut io.Writer = os.Stderr
	var logFile *os.File
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			logFile = f
		}
	}

	// Redirect Go's default log package to the same output so third-party
	// libs don't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.ParseLevel(cfg.LogLevel), logOut)

	store, err := kv.NewFileStore(cfg.DataDir, log)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:        cfg,
		log:        log,
		repo:       recipes.New(store, log),
		appearance: appearance.New(store, log),
		logFile:    logFile,
	}

	settings := a.appearance.Get(cmd.Context())
	a.colors = theme.Resolve(settings, a.dark(), cfg.SystemScheme.Source())
	a.styles = tui.NewStyles(a.colors)

	// Audio is optional. No device means bell-only notifications.
	if cfg.ChimeEnabled {
		player, err := chime.NewPlayer(log)
		if err != nil {
			log.Warn("audio unavailable, chime disabled: %v", err)
		} else {
			a.player = player
		}
	}
	a.notifier = chime.NewNotifier(log, a.player, nil)

	return a, nil
}

// mustApp is newApp for commands that only need styles and can fall back
// to defaults when wiring fails.
func mustApp(cmd *cobra.Command) *app {
	a, err := newApp(cmd)
	if err != nil {
		return &app{styles: tui.NewStyles(theme.Resolve(appearance.Defaults(), true, nil))}
	}
	return a
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// dark resolves the configured dark setting, probing the terminal on auto.
func (a *app) dark() bool {
	switch a.cfg.Dark {
	case "on":
		return true
	case "off":
		return false
	default:
		return theme.DetectDark()
	}
}

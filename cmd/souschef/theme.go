package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/theme"
	"github.com/kbenhamou/souschef/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show and change the appearance settings",
	RunE:  runThemeShow,
}

func init() {
	modeCmd := &cobra.Command{
		Use:   "mode <system|catppuccin|nothing>",
		Short: "Switch the palette family",
		Args:  cobra.ExactArgs(1),
		RunE:  runThemeMode,
	}

	accentCmd := &cobra.Command{
		Use:   "accent <name>",
		Short: "Pick a Catppuccin accent (switches to catppuccin mode)",
		Args:  cobra.ExactArgs(1),
		RunE:  runThemeAccent,
	}

	accentsCmd := &cobra.Command{
		Use:   "accents",
		Short: "List the selectable accents",
		RunE:  runThemeAccents,
	}

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick an accent interactively",
		RunE:  runThemePick,
	}

	themeCmd.AddCommand(modeCmd, accentCmd, accentsCmd, pickCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	settings := a.appearance.Get(cmd.Context())
	fmt.Println(a.styles.Header.Render("Appearance"))
	fmt.Println(a.styles.Primary.Render("  mode:   " + string(settings.ThemeMode)))
	fmt.Println(a.styles.Primary.Render("  accent: " + settings.CatppuccinAccent))
	fmt.Println()
	printSwatch(a, "primary", a.colors.Primary)
	printSwatch(a, "secondary", a.colors.Secondary)
	printSwatch(a, "tertiary", a.colors.Tertiary)
	printSwatch(a, "surface", a.colors.Surface)
	printSwatch(a, "text", a.colors.Text)
	return nil
}

func printSwatch(a *app, name, hex string) {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
	fmt.Printf("  %-10s %s %s\n", name, block, a.styles.Hint.Render(hex))
}

func runThemeMode(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	saved, err := a.appearance.SetMode(cmd.Context(), domain.ThemeMode(args[0]))
	if err != nil {
		return err
	}
	fmt.Println(a.styles.Primary.Render("mode set to " + string(saved.ThemeMode)))
	return nil
}

func runThemeAccent(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	saved, err := a.appearance.SetAccent(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(a.styles.Primary.Render("accent set to " + saved.CatppuccinAccent))
	return nil
}

func runThemePick(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	settings := a.appearance.Get(cmd.Context())
	return tui.RunAccentPicker(a.appearance, settings.CatppuccinAccent, a.styles, a.dark())
}

func runThemeAccents(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	dark := a.dark()
	for _, opt := range theme.AccentOptions() {
		c := theme.Resolve(domain.AppearanceSettings{
			ThemeMode:        domain.ThemeCatppuccin,
			CatppuccinAccent: opt.Value,
		}, dark, nil)
		block := lipgloss.NewStyle().Background(lipgloss.Color(c.Primary)).Render("    ")
		fmt.Printf("  %s %-10s %s\n", block, opt.Value, a.styles.Hint.Render(c.Primary))
	}
	return nil
}

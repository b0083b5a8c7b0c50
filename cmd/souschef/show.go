package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/scale"
)

var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show a recipe in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	r, err := a.repo.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	title := r.Title
	if r.IsFavorite {
		title += " ♥"
	}
	fmt.Println(a.styles.Title.Render(title))
	if r.Description != "" {
		fmt.Println(a.styles.Primary.Render(r.Description))
	}
	meta := fmt.Sprintf("%s · %d servings · ~%.0f min total", r.Category, r.Servings, scale.TotalCookingTime(r))
	fmt.Println(a.styles.Secondary.Render(meta))
	fmt.Println()

	fmt.Println(a.styles.Header.Render("Ingredients:"))
	for _, e := range scale.Consolidate(r.Steps) {
		fmt.Println(a.styles.Primary.Render("  - " + scale.FormatEntry(e)))
	}
	fmt.Println()

	fmt.Println(a.styles.Header.Render("Steps:"))
	for _, s := range r.Steps {
		head := fmt.Sprintf("  %d. %s", s.Order, s.Name)
		if s.Duration > 0 {
			head += fmt.Sprintf(" (~%.0f min)", s.Duration)
		}
		fmt.Println(a.styles.Primary.Render(head))
		fmt.Println(a.styles.Secondary.Render("     " + s.Description))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/scale"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored recipes",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolP("favorites", "f", false, "only show favorites")
	listCmd.Flags().String("category", "", "only show one category (breakfast, lunch, dinner, snack, dessert)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	favOnly, _ := cmd.Flags().GetBool("favorites")
	category, _ := cmd.Flags().GetString("category")

	var all []domain.Recipe
	if favOnly {
		all, err = a.repo.ListFavorites(ctx)
	} else {
		all, err = a.repo.ListAll(ctx)
	}
	if err != nil {
		return err
	}

	if category != "" {
		filtered := all[:0]
		for _, r := range all {
			if string(r.Category) == category {
				filtered = append(filtered, r)
			}
		}
		all = filtered
	}

	if len(all) == 0 {
		fmt.Println(a.styles.Hint.Render("No recipes yet. Add one with 'souschef add'."))
		return nil
	}

	for _, r := range all {
		marker := "  "
		if r.IsFavorite {
			marker = a.styles.Favorite.Render("♥ ")
		}
		fmt.Printf("%s%s  %s\n", marker, a.styles.Title.Render(r.Title), a.styles.Hint.Render("["+r.ID+"]"))

		meta := fmt.Sprintf("  %s · %d servings · ~%.0f min", r.Category, r.Servings, scale.TotalCookingTime(&r))
		fmt.Println(a.styles.Secondary.Render(meta))
		fmt.Println(a.styles.Hint.Render("  updated " + humanize.Time(r.UpdatedAt)))
		fmt.Println()
	}
	return nil
}

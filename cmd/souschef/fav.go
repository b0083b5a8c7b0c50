package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favCmd = &cobra.Command{
	Use:   "fav <recipe-id>",
	Short: "Toggle a recipe's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runFav,
}

func init() {
	rootCmd.AddCommand(favCmd)
}

func runFav(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	on, err := a.repo.ToggleFavorite(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if on {
		fmt.Println(a.styles.Favorite.Render("♥ added to favorites"))
	} else {
		fmt.Println(a.styles.Hint.Render("removed from favorites"))
	}
	return nil
}

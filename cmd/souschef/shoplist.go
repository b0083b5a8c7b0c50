package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/cookflow"
	"github.com/kbenhamou/souschef/internal/scale"
)

var shoplistCmd = &cobra.Command{
	Use:   "shoplist <recipe-id>",
	Short: "Print the consolidated ingredient list",
	Long: `Merges the ingredients of every step into one shopping list,
scaled to the requested serving count.`,
	Args: cobra.ExactArgs(1),
	RunE: runShoplist,
}

func init() {
	shoplistCmd.Flags().IntP("servings", "s", 0, "serving count (default: the recipe's own)")
	rootCmd.AddCommand(shoplistCmd)
}

func runShoplist(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	r, err := a.repo.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	servings, _ := cmd.Flags().GetInt("servings")
	if servings <= 0 {
		servings = r.Servings
	}
	servings = cookflow.ClampServings(servings)

	header := fmt.Sprintf("%s · %d servings", r.Title, servings)
	fmt.Println(a.styles.Title.Render(header))
	for _, e := range scale.ShoppingList(r, servings) {
		fmt.Println(a.styles.Primary.Render("  - " + scale.FormatEntry(e)))
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe from a JSON file",
	Long: `Reads a recipe draft as JSON from --file (or stdin with "-") and
stores it. The draft needs a title, category, servings, and at least one
step; id and timestamps are assigned on save.

Example draft:

  {
    "title": "Omelette",
    "category": "breakfast",
    "servings": 2,
    "steps": [
      {"name": "Prep", "description": "Crack and whisk the eggs.",
       "duration": 2,
       "ingredients": [{"name": "eggs", "unit": "pcs", "quantity": 3}]}
    ]
  }`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringP("file", "f", "-", "recipe JSON file, \"-\" for stdin")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	path, _ := cmd.Flags().GetString("file")
	data, err := readInput(path)
	if err != nil {
		return err
	}

	var draft domain.Recipe
	if err := json.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("parsing recipe draft: %w", err)
	}

	created, err := a.repo.Create(cmd.Context(), draft)
	if err != nil {
		return err
	}

	fmt.Println(a.styles.Primary.Render(fmt.Sprintf("Added %q with id %s", created.Title, created.ID)))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

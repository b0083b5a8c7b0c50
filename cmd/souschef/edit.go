package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/domain"
	"github.com/kbenhamou/souschef/internal/recipes"
)

var editCmd = &cobra.Command{
	Use:   "edit <recipe-id>",
	Short: "Edit fields of a stored recipe",
	Long: `Updates only the fields given as flags; everything else is left as
it is. Steps are replaced wholesale from --steps-file since they form an
ordered unit.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("description", "", "new description")
	editCmd.Flags().Int("servings", 0, "new baseline serving count")
	editCmd.Flags().String("category", "", "new category")
	editCmd.Flags().String("img", "", "new image path or URL")
	editCmd.Flags().String("steps-file", "", "JSON file with the full replacement step list, \"-\" for stdin")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	var patch recipes.Patch
	changed := false

	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		patch.Title = &v
		changed = true
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		patch.Description = &v
		changed = true
	}
	if cmd.Flags().Changed("servings") {
		v, _ := cmd.Flags().GetInt("servings")
		patch.Servings = &v
		changed = true
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		c := domain.Category(v)
		patch.Category = &c
		changed = true
	}
	if cmd.Flags().Changed("img") {
		v, _ := cmd.Flags().GetString("img")
		patch.Img = &v
		changed = true
	}
	if cmd.Flags().Changed("steps-file") {
		path, _ := cmd.Flags().GetString("steps-file")
		data, err := readInput(path)
		if err != nil {
			return err
		}
		var steps []domain.Step
		if err := json.Unmarshal(data, &steps); err != nil {
			return fmt.Errorf("parsing steps: %w", err)
		}
		patch.Steps = steps
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to change, pass at least one flag")
	}

	updated, err := a.repo.Update(cmd.Context(), args[0], patch)
	if err != nil {
		return err
	}

	fmt.Println(a.styles.Primary.Render(fmt.Sprintf("Updated %q", updated.Title)))
	return nil
}

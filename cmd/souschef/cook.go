package main

import (
	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/cookflow"
	"github.com/kbenhamou/souschef/internal/tui"
)

var cookCmd = &cobra.Command{
	Use:   "cook <recipe-id>",
	Short: "Cook a recipe step by step",
	Long: `Opens the guided cooking session: pick a serving count, review the
scaled ingredient list, then walk the steps with an optional countdown
timer per step. The session works on a snapshot of the recipe, so edits
made meanwhile do not shift the steps mid-cook.`,
	Args: cobra.ExactArgs(1),
	RunE: runCook,
}

func init() {
	cookCmd.Flags().IntP("servings", "s", 0, "preselect a serving count")
	rootCmd.AddCommand(cookCmd)
}

func runCook(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	r, err := a.repo.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	flow := cookflow.Start(r, a.log)
	if servings, _ := cmd.Flags().GetInt("servings"); servings > 0 {
		flow.SelectServings(servings)
	}

	return tui.RunCook(flow, a.styles, a.notifier, a.log)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/kbenhamou/souschef/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	all, err := a.repo.ListAll(cmd.Context())
	if err != nil {
		return err
	}
	return tui.RunBrowse(a.repo, all, a.styles, a.log)
}

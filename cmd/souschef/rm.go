package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <recipe-id>",
	Short: "Delete a recipe",
	Long:  "Deletes the recipe immediately. There is no undo.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	r, err := a.repo.Get(ctx, args[0])
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Printf("Delete %q? This cannot be undone. [y/N] ", r.Title)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			fmt.Println(a.styles.Hint.Render("Kept."))
			return nil
		}
	}

	if err := a.repo.Delete(ctx, r.ID); err != nil {
		return err
	}
	fmt.Println(a.styles.Primary.Render(fmt.Sprintf("Deleted %q", r.Title)))
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the project's node_modules directory",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	target := ctx.NodeModulesDir()
	if _, err := os.Stat(target); os.IsNotExist(err) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No node_modules in %s; nothing to clean.\n", ctx.Root)
		return nil
	}

	if !force {
		if !stdinIsTTY() {
			return fmt.Errorf("clean is destructive; pass --force to confirm")
		}
		ok, err := promptConfirm(fmt.Sprintf("Remove %s?", target))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("removing node_modules: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", target)
	return nil
}

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open package.json in your editor",
		Args:  cobra.NoArgs,
		RunE:  runEdit,
	}
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("neither $VISUAL nor $EDITOR is set")
	}

	c := exec.Command(editor, ctx.ManifestPath) //nolint:gosec // editor comes from the user's own environment
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/pm"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed dependencies via the package manager",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}
	return dispatch(cmd, ctx, pm.VerbList, "", false)
}

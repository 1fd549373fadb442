package main

import (
	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/pm"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Aliases: []string{"i"},
		Short:   "Install all dependencies from package.json",
		Args:    cobra.NoArgs,
		RunE:    runInstall,
	}
}

func runInstall(cmd *cobra.Command, _ []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}
	return dispatch(cmd, ctx, pm.VerbInstall, "", false)
}

package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jspkg",
		Short:   "Detect and drive the package manager of a JavaScript project",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringP("dir", "C", ".", "Directory to resolve the project from")
	cmd.PersistentFlags().String("pm", "", "Package manager to use, bypassing lockfile detection (npm, yarn, pnpm, bun, deno)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newInstallCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newRunCmd(),
		newListCmd(),
		newScriptsCmd(),
		newDepsCmd(),
		newInitCmd(),
		newWhichCmd(),
		newEditCmd(),
		newCleanCmd(),
		newDoctorCmd(),
	)

	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/pm"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [package...]",
		Short: "Add dependencies to the project",
		RunE:  runAdd,
	}
	cmd.Flags().BoolP("dev", "D", false, "Save as a development dependency")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	dev, _ := cmd.Flags().GetBool("dev")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	arg := strings.Join(args, " ")
	if arg == "" {
		if !stdinIsTTY() {
			return fmt.Errorf("no package given and stdin is not a TTY; pass a package name")
		}
		name, err := promptInput(
			"Package to add",
			"lodash",
			func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("package name is required")
				}
				return nil
			},
		)
		if err != nil {
			return err
		}
		arg = strings.TrimSpace(name)
	}

	verb := pm.VerbAdd
	if dev {
		verb = pm.VerbAddDev
	}
	return dispatch(cmd, ctx, verb, arg, false)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/manifest"
	"github.com/fbkclanna/jspkg/internal/pm"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [package]",
		Aliases: []string{"rm", "uninstall"},
		Short:   "Remove a dependency from the project",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	var arg string
	if len(args) == 1 {
		// An explicit argument is passed through as-is; the package
		// manager reports packages it does not know about.
		arg = args[0]
	} else {
		arg, err = selectDependency(ctx.Manifest)
		if err != nil {
			return err
		}
	}

	return dispatch(cmd, ctx, pm.VerbRemove, arg, false)
}

// selectDependency offers an interactive picker over the manifest's
// declared dependencies.
func selectDependency(mf *manifest.Manifest) (string, error) {
	if !stdinIsTTY() {
		return "", fmt.Errorf("no package given and stdin is not a TTY; pass a package name")
	}

	deps := append(mf.DependencyEntries(), mf.DevDependencyEntries()...)
	if len(deps) == 0 {
		return "", fmt.Errorf("no dependencies declared in %s", manifest.Filename)
	}

	items := make([]selectItem, len(deps))
	for i, d := range deps {
		items[i] = selectItem{Label: d.Name, Detail: d.Value}
	}
	idx, err := promptSelect("Remove which package?", items)
	if err != nil {
		return "", err
	}
	return deps[idx].Name, nil
}

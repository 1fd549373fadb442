package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/manifest"
	"github.com/fbkclanna/jspkg/internal/pm"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script from package.json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	var script string
	if len(args) == 1 {
		script = args[0]
		if !ctx.Manifest.HasScript(script) {
			return fmt.Errorf("script %q not found in %s", script, manifest.Filename)
		}
	} else {
		script, err = selectScript(ctx.Manifest)
		if err != nil {
			return err
		}
	}

	// Scripts may be long-running dev servers that read the terminal.
	return dispatch(cmd, ctx, pm.VerbRun, script, true)
}

// selectScript offers an interactive picker over the manifest's scripts.
func selectScript(mf *manifest.Manifest) (string, error) {
	if !stdinIsTTY() {
		return "", fmt.Errorf("no script given and stdin is not a TTY; pass a script name")
	}

	scripts := mf.ScriptEntries()
	if len(scripts) == 0 {
		return "", fmt.Errorf("no scripts declared in %s", manifest.Filename)
	}

	items := make([]selectItem, len(scripts))
	for i, s := range scripts {
		items[i] = selectItem{Label: s.Name, Detail: s.Value}
	}
	idx, err := promptSelect("Run which script?", items)
	if err != nil {
		return "", err
	}
	return scripts[idx].Name, nil
}

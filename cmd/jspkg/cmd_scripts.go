package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/ui"
)

func newScriptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Show the scripts declared in package.json",
		Args:  cobra.NoArgs,
		RunE:  runScripts,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runScripts(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	scripts := ctx.Manifest.ScriptEntries()
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scripts)
	}

	if len(scripts) == 0 {
		_, _ = fmt.Fprintf(out, "No scripts declared in %s\n", ctx.ManifestPath)
		return nil
	}

	tbl := ui.NewTable(out, "SCRIPT", "COMMAND")
	for _, s := range scripts {
		tbl.Row(s.Name, s.Value)
	}
	return tbl.Flush()
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/ui"
)

func newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show the dependencies declared in package.json",
		Args:  cobra.NoArgs,
		RunE:  runDeps,
	}
	cmd.Flags().Bool("dev", false, "Include devDependencies")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type depEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Dev     bool   `json:"dev,omitempty"`
}

func runDeps(cmd *cobra.Command, _ []string) error {
	includeDev, _ := cmd.Flags().GetBool("dev")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	var deps []depEntry
	for _, d := range ctx.Manifest.DependencyEntries() {
		deps = append(deps, depEntry{Name: d.Name, Version: d.Value})
	}
	if includeDev {
		for _, d := range ctx.Manifest.DevDependencyEntries() {
			deps = append(deps, depEntry{Name: d.Name, Version: d.Value, Dev: true})
		}
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(deps)
	}

	if len(deps) == 0 {
		_, _ = fmt.Fprintf(out, "No dependencies declared in %s\n", ctx.ManifestPath)
		return nil
	}

	tbl := ui.NewTable(out, "PACKAGE", "VERSION", "TYPE")
	for _, d := range deps {
		kind := "runtime"
		if d.Dev {
			kind = "dev"
		}
		tbl.Row(d.Name, d.Version, kind)
	}
	return tbl.Flush()
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/pm"
	"github.com/fbkclanna/jspkg/internal/ui"
)

func newWhichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "which",
		Short: "Show the resolved project root and package manager",
		Args:  cobra.NoArgs,
		RunE:  runWhich,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type detection struct {
	Name      string   `json:"name"`
	Root      string   `json:"root"`
	Manifest  string   `json:"manifest"`
	Manager   string   `json:"manager"`
	Source    string   `json:"source"`
	Lockfile  string   `json:"lockfile,omitempty"`
	Lockfiles []string `json:"lockfiles,omitempty"`
}

func runWhich(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	override, _ := cmd.Flags().GetString("pm")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	d := detection{
		Name:      ctx.Name(),
		Root:      ctx.Root,
		Manifest:  ctx.ManifestPath,
		Manager:   string(ctx.Manager),
		Lockfile:  ctx.Lockfile,
		Lockfiles: pm.PresentLockfiles(ctx.Root),
	}
	switch {
	case override != "":
		d.Source = "flag"
	case ctx.Lockfile != "":
		d.Source = "lockfile"
	default:
		d.Source = "default"
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return err
		}
	} else {
		kv := ui.NewKV(out)
		kv.Pair("Project", d.Name)
		kv.Pair("Root", d.Root)
		kv.Pair("Manager", d.Manager)
		kv.Pair("Source", d.Source)
		if d.Lockfile != "" {
			kv.Pair("Lockfile", d.Lockfile)
		}
		if err := kv.Flush(); err != nil {
			return err
		}
	}

	if len(d.Lockfiles) > 1 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: multiple lockfiles present (%s); %s wins by priority\n",
			strings.Join(d.Lockfiles, ", "), d.Lockfiles[0])
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/pm"
	"github.com/fbkclanna/jspkg/internal/runner"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// Probe every supported manager binary.
	installed := make(map[pm.Manager]bool, len(pm.Managers()))
	for _, m := range pm.Managers() {
		_, _ = fmt.Fprintf(out, "Checking %s... ", m)
		if !runner.Installed(string(m)) {
			_, _ = fmt.Fprintln(out, "NOT FOUND")
			continue
		}
		installed[m] = true
		if ver, err := runner.Version(string(m)); err == nil {
			_, _ = fmt.Fprintf(out, "found (%s)\n", firstLine(ver))
		} else {
			_, _ = fmt.Fprintln(out, "found")
		}
	}

	// Project checks only apply when a project is resolvable.
	ctx, err := loadProject(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(out, "No project found (%v); skipping project checks\n", err)
		return nil
	}

	_, _ = fmt.Fprintf(out, "Project: %s (manager: %s, %d scripts)\n",
		ctx.Name(), ctx.Manager, len(ctx.Manifest.ScriptEntries()))

	if locks := pm.PresentLockfiles(ctx.Root); len(locks) > 1 {
		_, _ = fmt.Fprintf(out, "Warning: multiple lockfiles present: %s\n", strings.Join(locks, ", "))
	}

	if !installed[ctx.Manager] {
		_, _ = fmt.Fprintf(out, "\nActive package manager %s is not installed.\n", ctx.Manager)
		return fmt.Errorf("doctor checks failed")
	}

	_, _ = fmt.Fprintln(out, "\nAll checks passed.")
	return nil
}

// firstLine trims multi-line version output (yarn prints extra noise).
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

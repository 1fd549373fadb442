package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fbkclanna/jspkg/internal/config"
	"github.com/fbkclanna/jspkg/internal/pm"
	"github.com/fbkclanna/jspkg/internal/project"
	"github.com/fbkclanna/jspkg/internal/runner"
	"github.com/fbkclanna/jspkg/internal/ui"
)

// loadProject resolves the project context for the current invocation,
// honoring the --dir start directory and the --pm manager override.
func loadProject(cmd *cobra.Command) (*project.Context, error) {
	dir, _ := cmd.Flags().GetString("dir")
	override, _ := cmd.Flags().GetString("pm")

	ctx, err := project.Load(dir, configuredDefault())
	if err != nil {
		return nil, err
	}

	if override != "" {
		m, err := pm.Parse(override)
		if err != nil {
			return nil, err
		}
		ctx.Manager = m
	}

	log.Debug("resolved project", "root", ctx.Root, "manager", ctx.Manager, "lockfile", ctx.Lockfile)
	return ctx, nil
}

// configuredDefault reads the persisted default manager. Config problems
// degrade to npm rather than blocking the command.
func configuredDefault() pm.Manager {
	path, err := config.Path()
	if err != nil {
		return pm.Default
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Debug("ignoring unreadable config", "path", path, "err", err)
		return pm.Default
	}
	return cfg.DefaultManager()
}

// dispatch builds the command line for (manager, verb, arg) and executes
// it in the project root with labeled output.
func dispatch(cmd *cobra.Command, ctx *project.Context, verb pm.Verb, arg string, interactive bool) error {
	command, err := pm.Build(ctx.Manager, verb, arg)
	if err != nil {
		return err
	}
	return execute(cmd, command, ctx.Root, pm.Label(ctx.Manager, ctx.Name(), verb), interactive)
}

// execute runs a built command line in dir. Interactive commands inherit
// the terminal directly; everything else gets its output tagged with the
// stream label.
func execute(cmd *cobra.Command, command, dir, label string, interactive bool) error {
	log.Debug("dispatching", "command", command, "dir", dir, "label", label)
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), dimStyle.Render("$ "+command))

	opts := runner.Options{Dir: dir, Interactive: interactive}
	if interactive {
		opts.Stdout = cmd.OutOrStdout()
		opts.Stderr = cmd.ErrOrStderr()
		return runner.Run(command, opts)
	}

	outW := ui.NewLabelWriter(cmd.OutOrStdout(), label)
	errW := ui.NewLabelWriter(cmd.ErrOrStderr(), label)
	opts.Stdout = outW
	opts.Stderr = errW
	runErr := runner.Run(command, opts)
	_ = outW.Flush()
	_ = errW.Flush()
	return runErr
}

// stdinIsTTY reports whether interactive prompts can be shown.
func stdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

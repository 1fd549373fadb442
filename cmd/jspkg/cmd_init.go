package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/jspkg/internal/config"
	"github.com/fbkclanna/jspkg/internal/pm"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Choose a package manager and initialize a new project",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

// runInit is the one command that mutates shared state: the chosen
// manager is persisted as the configured default before `<pm> init`
// is dispatched.
func runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	override, _ := cmd.Flags().GetString("pm")

	var m pm.Manager
	var err error
	if override != "" {
		m, err = pm.Parse(override)
		if err != nil {
			return err
		}
	} else {
		if !stdinIsTTY() {
			return fmt.Errorf("interactive init requires a TTY; use --pm to choose a package manager")
		}
		m, err = selectManager()
		if err != nil {
			return err
		}
	}

	saveDefaultManager(cmd, m)

	// init runs in --dir itself: there is no project root yet.
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}
	command, err := pm.Build(m, pm.VerbInit, "")
	if err != nil {
		return err
	}
	return execute(cmd, command, abs, pm.Label(m, filepath.Base(abs), pm.VerbInit), true)
}

// selectManager offers an interactive picker over the supported managers.
func selectManager() (pm.Manager, error) {
	managers := pm.Managers()
	items := make([]selectItem, len(managers))
	for i, m := range managers {
		items[i] = selectItem{Label: string(m), Detail: pm.Lockfile(m)}
	}
	idx, err := promptSelect("Which package manager?", items)
	if err != nil {
		return "", err
	}
	return managers[idx], nil
}

// saveDefaultManager persists the choice as the configured default.
// Failures are reported as warnings; init proceeds regardless.
func saveDefaultManager(cmd *cobra.Command, m pm.Manager) {
	path, err := config.Path()
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: cannot locate config: %v\n", err)
		return
	}
	cfg, err := config.Load(path)
	if err != nil {
		cfg = &config.Config{}
	}
	cfg.Manager = string(m)
	if err := config.Save(path, cfg); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: saving config: %v\n", err)
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Default package manager set to %s\n", m)
}

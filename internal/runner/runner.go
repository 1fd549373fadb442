package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Options configures a single command execution.
type Options struct {
	// Dir is the working directory, usually the project root.
	Dir string
	// Interactive wires the subprocess to the caller's stdin for
	// commands that prompt (init, dev servers).
	Interactive bool
	// Stdout and Stderr receive the subprocess output. They default to
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes a package manager command line through the POSIX shell
// and waits for it to finish. The exit status propagates as the error.
func Run(command string, opts Options) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("empty command")
	}

	cmd := exec.Command("sh", "-c", command) //nolint:gosec // command is built from the verb template table
	cmd.Dir = opts.Dir

	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if opts.Interactive {
		cmd.Stdin = os.Stdin
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

// Installed reports whether the named binary is available on PATH.
func Installed(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}

// Version returns the trimmed output of `<bin> --version`.
func Version(bin string) (string, error) {
	out, err := exec.Command(bin, "--version").Output() //nolint:gosec // bin is one of the enumerated manager names
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", bin, err)
	}
	return strings.TrimSpace(string(out)), nil
}

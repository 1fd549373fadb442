package pm

import (
	"fmt"
	"strings"
)

// Manager identifies a JavaScript package manager. The value doubles as
// the name of the binary invoked on PATH.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
	Deno Manager = "deno"
)

// Default is the manager assumed when no lockfile is present and the user
// has not configured a preference.
const Default = NPM

// ErrUnknownManager reports a manager name outside the supported set.
var ErrUnknownManager = fmt.Errorf("unknown package manager (must be one of %s)", joinManagers())

// Managers returns all supported managers in a fixed order.
func Managers() []Manager {
	return []Manager{NPM, Yarn, PNPM, Bun, Deno}
}

// Parse converts a user-supplied string into a Manager.
func Parse(s string) (Manager, error) {
	m := Manager(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Managers() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownManager, s)
}

func (m Manager) String() string { return string(m) }

func joinManagers() string {
	names := make([]string, 0, len(Managers()))
	for _, m := range Managers() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

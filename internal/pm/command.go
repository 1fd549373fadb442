package pm

import (
	"fmt"
	"strings"
)

// Verb is an operation dispatched to a package manager CLI.
type Verb string

const (
	VerbInstall Verb = "install" // install everything from the manifest
	VerbAdd     Verb = "add"     // add a dependency
	VerbAddDev  Verb = "add-dev" // add a development dependency
	VerbRemove  Verb = "remove"  // remove a dependency
	VerbList    Verb = "list"    // list installed dependencies
	VerbRun     Verb = "run"     // run a manifest script
	VerbInit    Verb = "init"    // create a new manifest
)

// commandTable maps (verb, manager) to a command template. "%s" marks the
// argument slot for verbs that take one. Every (manager, verb) pair for
// the supported managers is enumerated; Build fails for anything outside
// the table rather than guessing.
var commandTable = map[Verb]map[Manager]string{
	VerbInstall: {
		NPM:  "npm install",
		Yarn: "yarn install",
		PNPM: "pnpm install",
		Bun:  "bun install",
		Deno: "deno install",
	},
	VerbAdd: {
		NPM:  "npm install %s --save",
		Yarn: "yarn add %s",
		PNPM: "pnpm add %s",
		Bun:  "bun add %s",
		Deno: "deno add %s",
	},
	VerbAddDev: {
		NPM:  "npm install %s --save-dev",
		Yarn: "yarn add %s --dev",
		PNPM: "pnpm add -D %s",
		Bun:  "bun add -d %s",
		Deno: "deno add --dev %s",
	},
	VerbRemove: {
		NPM:  "npm uninstall %s",
		Yarn: "yarn remove %s",
		PNPM: "pnpm remove %s",
		Bun:  "bun remove %s",
		Deno: "deno remove %s",
	},
	VerbList: {
		NPM:  "npm list --depth=0",
		Yarn: "yarn list --depth=0",
		PNPM: "pnpm list --depth=0",
		Bun:  "bun pm ls",
		Deno: "deno info",
	},
	VerbRun: {
		NPM:  "npm run %s",
		Yarn: "yarn run %s",
		PNPM: "pnpm run %s",
		Bun:  "bun run %s",
		Deno: "deno task %s",
	},
	VerbInit: {
		NPM:  "npm init",
		Yarn: "yarn init",
		PNPM: "pnpm init",
		Bun:  "bun init",
		Deno: "deno init",
	},
}

// Build returns the exact command line for dispatching verb to manager m.
// arg fills the template's argument slot and is required exactly for the
// verbs whose template declares one. A pair outside the table is an
// internal fault, not a user error.
func Build(m Manager, verb Verb, arg string) (string, error) {
	templates, ok := commandTable[verb]
	if !ok {
		return "", fmt.Errorf("internal: no command table for verb %q", verb)
	}
	tmpl, ok := templates[m]
	if !ok {
		return "", fmt.Errorf("internal: no %s command for package manager %q", verb, m)
	}

	if !strings.Contains(tmpl, "%s") {
		if arg != "" {
			return "", fmt.Errorf("%s %s takes no argument (got %q)", m, verb, arg)
		}
		return tmpl, nil
	}
	if arg == "" {
		return "", fmt.Errorf("%s %s requires an argument", m, verb)
	}
	return fmt.Sprintf(tmpl, arg), nil
}

// Label builds the stream tag attached to dispatched command output,
// of the form "<manager>:<project> - <verb>".
func Label(m Manager, project string, verb Verb) string {
	return fmt.Sprintf("%s:%s - %s", m, project, verb)
}

// Package pm defines the supported JavaScript package managers, the
// lockfile signals used to detect them, and the command templates for
// dispatching verbs to each manager's CLI.
package pm

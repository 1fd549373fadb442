// Package runner executes package manager command lines as subprocesses.
// It is the boundary between command construction and the outside world
// and depends on no other internal package.
package runner

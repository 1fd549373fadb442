// Package project locates the project root by walking up from a start
// directory and assembles the resolved Context used by every command:
// root path, parsed manifest, detected lockfile, and active package
// manager.
package project

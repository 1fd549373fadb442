package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/jspkg/internal/manifest"
	"github.com/fbkclanna/jspkg/internal/pm"
)

// ErrNoManifest reports that no package.json exists in the start
// directory or any of its ancestors.
var ErrNoManifest = errors.New("no package.json found")

// FindRoot returns the nearest directory, starting at startDir and
// walking up, that contains a package.json.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, manifest.Filename)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNoManifest, startDir)
		}
		dir = parent
	}
}

// Context holds the resolved paths and loaded state for a project.
type Context struct {
	Root         string
	ManifestPath string
	Manifest     *manifest.Manifest
	Lockfile     string // lockfile basename, empty when none exists
	Manager      pm.Manager
}

// Load locates the project root from startDir, parses its manifest, and
// resolves the package manager: the lockfile signal wins, otherwise
// fallback (the user's configured default) is used.
func Load(startDir string, fallback pm.Manager) (*Context, error) {
	root, err := FindRoot(startDir)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(root, manifest.Filename)
	mf, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Root:         root,
		ManifestPath: manifestPath,
		Manifest:     mf,
		Manager:      fallback,
	}
	if name, ok := pm.DetectLockfile(root); ok {
		ctx.Lockfile = name
		if m, ok := pm.FromLockfile(name); ok {
			ctx.Manager = m
		}
	}
	return ctx, nil
}

// Name returns the project name from the manifest, falling back to the
// root directory's basename when the manifest has no name field.
func (c *Context) Name() string {
	if c.Manifest != nil && c.Manifest.Name != "" {
		return c.Manifest.Name
	}
	return filepath.Base(c.Root)
}

// NodeModulesDir returns the node_modules path under the project root.
func (c *Context) NodeModulesDir() string {
	return filepath.Join(c.Root, "node_modules")
}

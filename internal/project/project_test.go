package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/jspkg/internal/pm"
	"github.com/fbkclanna/jspkg/internal/testutil"
)

func TestFindRoot_sameDir(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest)
	got, err := FindRoot(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dir {
		t.Errorf("FindRoot = %q, want %q", got, dir)
	}
}

func TestFindRoot_nearestAncestorWins(t *testing.T) {
	outer := testutil.WriteProject(t, `{"name": "outer"}`)
	inner := filepath.Join(outer, "packages", "app")
	testutil.WriteProjectAt(t, inner, `{"name": "inner"}`)

	start := filepath.Join(inner, "src", "components")
	if err := os.MkdirAll(start, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != inner {
		t.Errorf("FindRoot = %q, want nearest root %q (not %q)", got, inner, outer)
	}
}

func TestFindRoot_notFound(t *testing.T) {
	// A bare temp dir has no package.json anywhere up its (tmpfs) ancestry.
	dir := t.TempDir()
	_, err := FindRoot(dir)
	if err == nil {
		t.Skip("package.json exists in an ancestor of the temp dir; cannot test not-found")
	}
	if !errors.Is(err, ErrNoManifest) {
		t.Errorf("error should wrap ErrNoManifest: %v", err)
	}
}

func TestLoad_managerFromLockfile(t *testing.T) {
	dir := testutil.WriteProject(t, `{"name": "webapp"}`, "pnpm-lock.yaml")
	ctx, err := Load(dir, pm.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Manager != pm.PNPM {
		t.Errorf("manager = %s, want pnpm", ctx.Manager)
	}
	if ctx.Lockfile != "pnpm-lock.yaml" {
		t.Errorf("lockfile = %q, want pnpm-lock.yaml", ctx.Lockfile)
	}
	if ctx.Name() != "webapp" {
		t.Errorf("name = %q, want webapp", ctx.Name())
	}
}

func TestLoad_fallbackWithoutLockfile(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest)
	ctx, err := Load(dir, pm.Bun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Manager != pm.Bun {
		t.Errorf("manager = %s, want configured fallback bun", ctx.Manager)
	}
	if ctx.Lockfile != "" {
		t.Errorf("lockfile = %q, want empty", ctx.Lockfile)
	}
}

func TestLoad_lockfilePriority(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest, "yarn.lock", "package-lock.json")
	ctx, err := Load(dir, pm.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Manager != pm.NPM {
		t.Errorf("manager = %s, want npm (package-lock.json outranks yarn.lock)", ctx.Manager)
	}
}

func TestLoad_idempotent(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest, "yarn.lock")
	first, err := Load(dir, pm.Default)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Load(dir, pm.Default)
	if err != nil {
		t.Fatal(err)
	}
	if first.Manager != second.Manager || first.Root != second.Root {
		t.Errorf("Load not stable: (%s, %s) then (%s, %s)",
			first.Manager, first.Root, second.Manager, second.Root)
	}
}

func TestLoad_nameFallsBackToDir(t *testing.T) {
	dir := testutil.WriteProject(t, `{}`)
	ctx, err := Load(dir, pm.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Name() != filepath.Base(dir) {
		t.Errorf("name = %q, want directory basename %q", ctx.Name(), filepath.Base(dir))
	}
}

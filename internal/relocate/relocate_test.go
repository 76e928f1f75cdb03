// SPDX-License-Identifier: MPL-2.0

package relocate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"crowbar-cli/pkg/types"
)

// writeFile creates a file (and its parents) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRelocatePreservesStructureBelowAncestor(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "app")

	writeFile(t, filepath.Join(src, "proj", "cmds", "foo", "a.ts"), "aaa")
	writeFile(t, filepath.Join(src, "proj", "cmds", "foo", "b.ts"), "bbb")
	writeFile(t, filepath.Join(src, "proj", "cmds", "foo", "sub", "c.ts"), "ccc")

	files := []types.FilesystemPath{
		types.FilesystemPath(filepath.Join(src, "proj", "cmds", "foo", "a.ts")),
		types.FilesystemPath(filepath.Join(src, "proj", "cmds", "foo", "b.ts")),
		types.FilesystemPath(filepath.Join(src, "proj", "cmds", "foo", "sub", "c.ts")),
	}

	r := NewRelocator()
	if err := r.Relocate(context.Background(), files, types.FilesystemPath(dest)); err != nil {
		t.Fatalf("Relocate() error: %v", err)
	}

	if got := readFile(t, filepath.Join(dest, "a.ts")); got != "aaa" {
		t.Errorf("a.ts content = %q, want %q", got, "aaa")
	}
	if got := readFile(t, filepath.Join(dest, "b.ts")); got != "bbb" {
		t.Errorf("b.ts content = %q, want %q", got, "bbb")
	}
	if got := readFile(t, filepath.Join(dest, "sub", "c.ts")); got != "ccc" {
		t.Errorf("sub/c.ts content = %q, want %q", got, "ccc")
	}
}

func TestRelocateRecreatesDivergingDirectories(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "a", "x.ts"), "x")
	writeFile(t, filepath.Join(src, "b", "y.ts"), "y")

	files := []types.FilesystemPath{
		types.FilesystemPath(filepath.Join(src, "a", "x.ts")),
		types.FilesystemPath(filepath.Join(src, "b", "y.ts")),
	}

	r := NewRelocator()
	if err := r.Relocate(context.Background(), files, types.FilesystemPath(dest)); err != nil {
		t.Fatalf("Relocate() error: %v", err)
	}

	// The ancestor is the shared tempdir, so the "a" and "b" directories
	// must be recreated under the destination root.
	if got := readFile(t, filepath.Join(dest, "a", "x.ts")); got != "x" {
		t.Errorf("a/x.ts content = %q, want %q", got, "x")
	}
	if got := readFile(t, filepath.Join(dest, "b", "y.ts")); got != "y" {
		t.Errorf("b/y.ts content = %q, want %q", got, "y")
	}
}

func TestRelocateIsAllOrNothingOnCollision(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	writeFile(t, filepath.Join(src, "foo", "a.ts"), "new-a")
	writeFile(t, filepath.Join(src, "foo", "sub", "c.ts"), "new-c")

	// Pre-existing destination file collides with a.ts.
	writeFile(t, filepath.Join(dest, "a.ts"), "old-a")

	files := []types.FilesystemPath{
		types.FilesystemPath(filepath.Join(src, "foo", "a.ts")),
		types.FilesystemPath(filepath.Join(src, "foo", "sub", "c.ts")),
	}

	r := NewRelocator()
	err := r.Relocate(context.Background(), files, types.FilesystemPath(dest))
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("Relocate() error = %v, want ErrDestinationExists", err)
	}

	var existsErr *DestinationExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("error should be a *DestinationExistsError, got %T", err)
	}
	if want := types.FilesystemPath(filepath.Join(dest, "a.ts")); existsErr.Path != want {
		t.Errorf("colliding path = %q, want %q", existsErr.Path, want)
	}

	// The collision must abort before any mutation: the colliding file keeps
	// its content, the non-colliding file is not copied, and no directory is
	// created.
	if got := readFile(t, filepath.Join(dest, "a.ts")); got != "old-a" {
		t.Errorf("pre-existing file overwritten: %q", got)
	}
	if _, err := os.Stat(filepath.Join(dest, "sub")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("sub directory should not have been created, stat err = %v", err)
	}
}

func TestRelocateCollapsesDuplicateEntries(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "foo", "a.ts"), "aaa")
	writeFile(t, filepath.Join(src, "foo", "b.ts"), "bbb")

	// The same file listed twice maps to one destination; the batch must
	// copy it once instead of tripping over its own first write.
	files := []types.FilesystemPath{
		types.FilesystemPath(filepath.Join(src, "foo", "a.ts")),
		types.FilesystemPath(filepath.Join(src, "foo", "b.ts")),
		types.FilesystemPath(filepath.Join(src, "foo", "a.ts")),
	}

	r := NewRelocator()
	if err := r.Relocate(context.Background(), files, types.FilesystemPath(dest)); err != nil {
		t.Fatalf("Relocate() error: %v", err)
	}

	if got := readFile(t, filepath.Join(dest, "a.ts")); got != "aaa" {
		t.Errorf("a.ts content = %q, want %q", got, "aaa")
	}
	if got := readFile(t, filepath.Join(dest, "b.ts")); got != "bbb" {
		t.Errorf("b.ts content = %q, want %q", got, "bbb")
	}
}

func TestRelocateEmptyBatch(t *testing.T) {
	r := NewRelocator()
	err := r.Relocate(context.Background(), nil, types.FilesystemPath(t.TempDir()))
	if !errors.Is(err, ErrEmptyFileSet) {
		t.Errorf("Relocate(nil) error = %v, want ErrEmptyFileSet", err)
	}
}

func TestRelocatePreservesFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")

	script := filepath.Join(src, "bin", "run.sh")
	writeFile(t, script, "#!/bin/sh\n")
	if err := os.Chmod(script, 0o755); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	r := NewRelocator()
	files := []types.FilesystemPath{types.FilesystemPath(script)}
	if err := r.Relocate(context.Background(), files, types.FilesystemPath(dest)); err != nil {
		t.Fatalf("Relocate() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dest, "run.sh"))
	if err != nil {
		t.Fatalf("stat destination: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o755 {
		t.Errorf("destination mode = %o, want 755", got)
	}
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fixture wires sandbox directories into Go tests. A Fixture owns an
// auto-removed directory under the sandbox root, fails the test on any
// setup problem, and registers cleanup with t.Cleanup.
package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/azd-sandbox/tempdir"
)

// Fixture owns one sandbox directory for the lifetime of a test.
type Fixture struct {
	t   testing.TB
	dir *tempdir.Dir
}

// New creates a fixture around a uniquely named directory under the sandbox
// root. The directory is removed when the test finishes. Any setup failure
// fails the test immediately.
func New(t testing.TB) *Fixture {
	t.Helper()

	dir, err := tempdir.New()
	if err != nil {
		fatal(t, err)
	}
	return wire(t, dir)
}

// WithPath is like New but creates the directory at a caller-chosen
// sandbox-relative path. Cleanup removes the top-level component of that
// path, as with tempdir handles.
func WithPath(t testing.TB, path string) *Fixture {
	t.Helper()

	dir, err := tempdir.WithPath(path)
	if err != nil {
		fatal(t, err)
	}
	return wire(t, dir)
}

func fatal(t testing.TB, err error) {
	t.Helper()
	if errors.Is(err, tempdir.ErrRootNotFound) {
		t.Fatalf("%s is not set; point it at your harness scratch directory before running tests", tempdir.EnvRoot)
	}
	t.Fatalf("failed to create sandbox directory: %v", err)
}

func wire(t testing.TB, dir *tempdir.Dir) *Fixture {
	dir.AutoRemove()
	t.Cleanup(func() {
		if err := dir.Close(); err != nil {
			t.Errorf("failed to clean up sandbox directory: %v", err)
		}
	})
	return &Fixture{t: t, dir: dir}
}

// T returns the test the fixture belongs to.
func (f *Fixture) T() testing.TB {
	return f.t
}

// Path returns the absolute path of the fixture directory.
func (f *Fixture) Path() string {
	return f.dir.Path()
}

// JoinPath resolves path elements inside the fixture directory. Input that
// would resolve outside the directory fails the test.
func (f *Fixture) JoinPath(path ...string) string {
	f.t.Helper()

	joined, err := f.dir.Join(path...)
	if err != nil {
		f.t.Fatalf("failed to join path: %v", err)
	}
	return joined
}

// WriteFile writes contents to a file at a fixture-relative path, creating
// parent directories as needed.
func (f *Fixture) WriteFile(path string, contents string) {
	f.t.Helper()

	fullPath := f.JoinPath(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), tempdir.DirPermission); err != nil {
		f.t.Fatal(err)
	}
	if err := os.WriteFile(fullPath, []byte(contents), tempdir.FilePermission); err != nil {
		f.t.Fatal(err)
	}
}

// TouchFiles creates empty files at the given fixture-relative paths.
func (f *Fixture) TouchFiles(paths ...string) {
	f.t.Helper()

	for _, p := range paths {
		f.WriteFile(p, "")
	}
}

// Rm removes a file or directory at a fixture-relative path.
func (f *Fixture) Rm(path string) {
	f.t.Helper()

	if err := os.RemoveAll(f.JoinPath(path)); err != nil {
		f.t.Fatal(err)
	}
}

// NewFile creates a new file with a unique name inside the fixture
// directory.
func (f *Fixture) NewFile(prefix string) (*os.File, error) {
	return os.CreateTemp(f.Path(), prefix)
}

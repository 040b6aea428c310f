// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tempdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/google/uuid"

	"github.com/jongio/azd-sandbox/logutil"
	"github.com/jongio/azd-sandbox/relpath"
)

// Environment variable names for sandbox configuration.
const (
	// EnvRoot names the directory all sandbox paths resolve under.
	// Test harnesses point it at their scratch area before running.
	EnvRoot = "AZD_SANDBOX_ROOT"
)

// File permissions
const (
	// DirPermission is the permission for directories created inside the sandbox (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the permission for files written inside the sandbox (rw-r--r--)
	FilePermission = 0644
)

var (
	// ErrRootNotFound indicates AZD_SANDBOX_ROOT is unset or empty.
	ErrRootNotFound = errors.New("sandbox root not found")
	// ErrInvalidPath indicates the path resolves to the sandbox root itself.
	ErrInvalidPath = errors.New("invalid sandbox path")
)

// Dir is a handle to a directory created inside the sandbox root. A handle
// only exists for a directory that was actually created; construction fails
// otherwise. Handles do not auto-remove unless AutoRemove is called.
type Dir struct {
	root       string
	target     string
	full       string
	autoRemove bool
	removed    bool
}

// Root returns the sandbox root named by AZD_SANDBOX_ROOT as an absolute
// path. The environment is consulted on every call; the value is never
// cached.
func Root() (string, error) {
	root := os.Getenv(EnvRoot)
	if root == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrRootNotFound, EnvRoot)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve sandbox root: %w", err)
	}

	return abs, nil
}

// New creates a uniquely named directory directly under the sandbox root.
// The name is "test-" followed by a random UUID, so two calls never collide.
func New() (*Dir, error) {
	return WithPath("test-" + uuid.New().String())
}

// WithPath creates the directory at the given sandbox-relative path,
// including any missing parents, and returns a handle to it.
//
// The path is sanitized first: ".." components fail with
// relpath.ErrParentDirEscape, absolute paths fail with
// relpath.ErrRootDirEscape. A path that resolves to the root itself ("",
// ".") fails with ErrInvalidPath so the root can never become a removal
// target. Creating a path that already exists succeeds.
func WithPath(path string) (*Dir, error) {
	target, err := relpath.Sanitize(path)
	if err != nil {
		return nil, err
	}

	root, err := Root()
	if err != nil {
		return nil, err
	}

	if target == "" {
		return nil, fmt.Errorf("%w: %q resolves to the sandbox root", ErrInvalidPath, path)
	}

	full := filepath.Join(root, target)
	if err := os.MkdirAll(full, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	logutil.Debug("created sandbox directory", "path", full)

	return &Dir{root: root, target: target, full: full}, nil
}

// MustNew is like New but panics on failure.
func MustNew() *Dir {
	d, err := New()
	if err != nil {
		panic(err)
	}
	return d
}

// MustWithPath is like WithPath but panics on failure.
func MustWithPath(path string) *Dir {
	d, err := WithPath(path)
	if err != nil {
		panic(err)
	}
	return d
}

// AutoRemove marks the handle for removal on Close and returns the handle
// for chaining:
//
//	dir := tempdir.MustNew().AutoRemove()
//	defer dir.MustClose()
func (d *Dir) AutoRemove() *Dir {
	d.autoRemove = true
	return d
}

// Path returns the absolute path of the directory.
func (d *Dir) Path() string {
	return d.full
}

// Join resolves elem relative to the handle's directory. The result is
// guaranteed to stay inside the directory even for hostile input; traversal
// components are resolved within the directory rather than escaping it.
func (d *Dir) Join(elem ...string) (string, error) {
	joined, err := securejoin.SecureJoin(d.full, filepath.Join(elem...))
	if err != nil {
		return "", fmt.Errorf("failed to join path: %w", err)
	}
	return joined, nil
}

// Close removes the handle's directory tree when auto-removal is enabled.
// Removal deletes the top-level component of the relative path, so a handle
// for "foo/bar/baz" removes "foo" and everything below it. Without
// auto-removal Close does nothing and the directory persists.
//
// Close is idempotent. A removal failure is logged at error level and
// returned, never swallowed: directories leaking into later harness runs are
// worse than a failed test.
func (d *Dir) Close() error {
	if !d.autoRemove || d.removed {
		return nil
	}

	first := relpath.First(d.target)
	if first == "" {
		d.removed = true
		return nil
	}

	top := filepath.Join(d.root, first)
	if err := os.RemoveAll(top); err != nil {
		logutil.Error("failed to remove sandbox directory", "error", err, "path", top)
		return fmt.Errorf("failed to remove %s: %w", top, err)
	}

	d.removed = true
	logutil.Debug("removed sandbox directory", "path", top)
	return nil
}

// MustClose is like Close but panics on failure. Use it in defers where a
// leaked directory must abort the run.
func (d *Dir) MustClose() {
	if err := d.Close(); err != nil {
		panic(err)
	}
}

// Remove deletes a sandbox directory by its relative path without holding a
// handle to it. The path goes through the same sanitization as WithPath, and
// as with Close, the top-level component of the path is what gets removed.
// Removing a path that does not exist succeeds.
func Remove(path string) error {
	target, err := relpath.Sanitize(path)
	if err != nil {
		return err
	}

	root, err := Root()
	if err != nil {
		return err
	}

	if target == "" {
		return fmt.Errorf("%w: %q resolves to the sandbox root", ErrInvalidPath, path)
	}

	top := filepath.Join(root, relpath.First(target))
	if err := os.RemoveAll(top); err != nil {
		return fmt.Errorf("failed to remove %s: %w", top, err)
	}

	logutil.Debug("removed sandbox directory", "path", top)
	return nil
}

// Package tempdir creates and cleans up scoped temporary directories under a
// single sandbox root for test harnesses.
//
// The sandbox root comes from the AZD_SANDBOX_ROOT environment variable; a
// harness points it at its scratch area once, and every directory this
// package touches lives below it. Paths are sanitized before any filesystem
// operation, so a directory name taken from test code or a CLI argument can
// never climb out of the root.
//
// # Lifecycle
//
// A handle owns the directory it created. By default the directory persists
// after the handle is gone (useful for inspecting artifacts of a failed
// run); calling AutoRemove flips the handle into cleaning up after itself:
//
//	dir, err := tempdir.WithPath("itest/fixtures/logs")
//	if err != nil {
//	    return err
//	}
//	dir = dir.AutoRemove()
//	defer dir.MustClose()
//
// Cleanup removes the top-level component of the relative path: the handle
// above removes "itest" and everything below it, so sibling handles created
// under the same top-level directory are cleaned up together.
//
// For a throwaway directory with a collision-free random name:
//
//	dir := tempdir.MustNew().AutoRemove()
//	defer dir.MustClose()
//
// # Error Handling
//
// Construction returns sentinel-wrapped errors callers can test with
// errors.Is: relpath.ErrParentDirEscape, relpath.ErrRootDirEscape,
// ErrRootNotFound, ErrInvalidPath. Cleanup failures are logged and returned
// by Close (or panic via MustClose); they are never silently dropped.
//
// Test code should normally use the fixture package instead, which wires
// these handles into testing.TB cleanup.
package tempdir

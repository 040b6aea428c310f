// Package relpath provides lexical sanitization of relative paths for
// sandboxed directory operations.
//
// Test harnesses accept directory names from many places: test code, CLI
// arguments, environment-driven fixtures. Before any of those names reach the
// filesystem they must be proven to stay inside the sandbox root. This
// package is that proof: a small, pure, platform-aware normalizer with no
// filesystem access and no surprises.
//
// # Sanitization Rules
//
// Sanitize walks the path component by component:
//
//   - ordinary components are kept
//   - "." and empty components (from "//" or a trailing separator) are dropped
//   - ".." anywhere fails with ErrParentDirEscape
//   - a rooted path or volume prefix (C:, UNC share) fails with ErrRootDirEscape
//
// Forward slashes are accepted on every platform; backslashes are separators
// only where the platform treats them as such. The output always uses the
// platform separator.
//
// # Example Usage
//
//	rel, err := relpath.Sanitize("./logs/run-1")
//	if err != nil {
//	    return err
//	}
//	// rel == filepath.Join("logs", "run-1")
//
//	top := relpath.First(rel) // "logs"
//
// Sanitize never resolves symlinks and never consults the working directory;
// it is safe to call on untrusted input before the sandbox root is even
// known.
package relpath

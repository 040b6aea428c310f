// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package relpath sanitizes relative paths so they cannot escape a sandbox
// root. It is the single gate every user-supplied path passes through before
// any filesystem operation.
package relpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrParentDirEscape indicates a path contains a ".." component.
	ErrParentDirEscape = errors.New("path contains parent directory reference")
	// ErrRootDirEscape indicates an absolute path or a volume-qualified path.
	ErrRootDirEscape = errors.New("path escapes the sandbox root")
)

// Sanitize normalizes raw into a clean relative path made only of ordinary
// name components, or reports why it cannot.
//
// Both forward slashes and the platform separator are accepted. "." and empty
// components are dropped. A ".." component anywhere yields ErrParentDirEscape.
// A rooted path or a volume prefix (drive letter, UNC share) yields
// ErrRootDirEscape. The result uses the platform separator.
//
// An empty result (input "", ".", "./.") is not an error here; callers that
// need a non-empty target must reject it themselves.
//
// Sanitize is purely lexical and never touches the filesystem.
func Sanitize(raw string) (string, error) {
	path := filepath.FromSlash(raw)

	if vol := filepath.VolumeName(path); vol != "" {
		return "", fmt.Errorf("%w: %q has volume prefix %q", ErrRootDirEscape, raw, vol)
	}
	if path != "" && os.IsPathSeparator(path[0]) {
		return "", fmt.Errorf("%w: %q is rooted", ErrRootDirEscape, raw)
	}

	var parts []string
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		switch part {
		case "", ".":
			// dropped
		case "..":
			return "", fmt.Errorf("%w: %q", ErrParentDirEscape, raw)
		default:
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, string(filepath.Separator)), nil
}

// First returns the first component of a sanitized relative path, or "" when
// rel is empty. It is the unit of ownership for cleanup: removing a handle's
// tree removes the first component and everything below it.
func First(rel string) string {
	parts := strings.SplitN(rel, string(filepath.Separator), 2)
	return parts[0]
}

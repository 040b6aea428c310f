//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package relpath

import (
	"errors"
	"path/filepath"
	"testing"
)

// Windows-specific tests: backslash separators, drive letters, UNC shares.

func TestSanitize_BackslashSeparators(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "backslash relative path",
			raw:  `foo\bar`,
			want: filepath.Join("foo", "bar"),
		},
		{
			name: "mixed separators",
			raw:  `foo/bar\baz`,
			want: filepath.Join("foo", "bar", "baz"),
		},
		{
			name: "leading current directory backslash",
			raw:  `.\tmp\path`,
			want: filepath.Join("tmp", "path"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.raw)
			if err != nil {
				t.Fatalf("Sanitize(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitize_WindowsEscapes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantError error
	}{
		{
			name:      "parent reference with backslashes",
			raw:       `foo\..\bar`,
			wantError: ErrParentDirEscape,
		},
		{
			name:      "leading backslash parent",
			raw:       `..\foo`,
			wantError: ErrParentDirEscape,
		},
		{
			name:      "drive letter path",
			raw:       `C:\Temp\x`,
			wantError: ErrRootDirEscape,
		},
		{
			name:      "drive letter with forward slashes",
			raw:       `C:/Temp/x`,
			wantError: ErrRootDirEscape,
		},
		{
			name:      "drive relative path",
			raw:       `C:Temp`,
			wantError: ErrRootDirEscape,
		},
		{
			name:      "UNC share",
			raw:       `\\server\share\dir`,
			wantError: ErrRootDirEscape,
		},
		{
			name:      "rooted backslash",
			raw:       `\foo`,
			wantError: ErrRootDirEscape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.raw)
			if err == nil {
				t.Fatalf("Sanitize(%q) = %q, expected error", tt.raw, got)
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("Sanitize(%q) error = %v, want %v", tt.raw, err, tt.wantError)
			}
		})
	}
}

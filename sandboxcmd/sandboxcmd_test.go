// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sandboxcmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/azd-sandbox/tempdir"
	"github.com/jongio/azd-sandbox/testutil"
	"github.com/jongio/azd-sandbox/version"
)

func TestCreate_WithPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv(tempdir.EnvRoot, root)

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"create", "itest/logs", "-o", "json"})

	output := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})

	var result map[string]string
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("create -o json produced invalid JSON: %v\n%s", err, output)
	}

	want := filepath.Join(root, "itest", "logs")
	if result["path"] != want {
		t.Errorf("create path = %q, want %q", result["path"], want)
	}

	info, err := os.Stat(want)
	if err != nil || !info.IsDir() {
		t.Errorf("created directory missing: err=%v", err)
	}
}

func TestCreate_Random(t *testing.T) {
	root := t.TempDir()
	t.Setenv(tempdir.EnvRoot, root)

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"create", "-o", "json"})

	output := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})

	var result map[string]string
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("create -o json produced invalid JSON: %v\n%s", err, output)
	}

	base := filepath.Base(result["path"])
	if !strings.HasPrefix(base, "test-") {
		t.Errorf("random directory name = %q, want test- prefix", base)
	}
	if _, err := os.Stat(result["path"]); err != nil {
		t.Errorf("created directory missing: %v", err)
	}
}

func TestCreate_RejectsEscape(t *testing.T) {
	t.Setenv(tempdir.EnvRoot, t.TempDir())

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"create", "../escape"})

	if err := cmd.Execute(); err == nil {
		t.Error("create with a parent reference should fail")
	}
}

func TestCleanRoundTrip(t *testing.T) {
	root := t.TempDir()
	t.Setenv(tempdir.EnvRoot, root)

	create := NewRootCommand(version.New("azd-sandbox"))
	create.SetArgs([]string{"create", "suite/run/output"})
	testutil.CaptureOutput(t, create.Execute)

	clean := NewRootCommand(version.New("azd-sandbox"))
	clean.SetArgs([]string{"clean", "suite/run/output"})
	testutil.CaptureOutput(t, func() error {
		if err := clean.Execute(); err != nil {
			t.Errorf("clean error: %v", err)
		}
		return nil
	})

	if _, err := os.Stat(filepath.Join(root, "suite")); !os.IsNotExist(err) {
		t.Errorf("clean should remove the top-level segment, stat err: %v", err)
	}
}

func TestClean_RejectsRoot(t *testing.T) {
	t.Setenv(tempdir.EnvRoot, t.TempDir())

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"clean", "."})

	if err := cmd.Execute(); err == nil {
		t.Error("clean of the root itself should fail")
	}
}

func TestCheck_Healthy(t *testing.T) {
	t.Setenv(tempdir.EnvRoot, t.TempDir())

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"check"})

	output := testutil.CaptureOutput(t, func() error {
		if err := cmd.Execute(); err != nil {
			t.Errorf("check on a healthy root failed: %v", err)
		}
		return nil
	})

	if !strings.Contains(output, "Sandbox root is ready") {
		t.Errorf("check output missing ready line, got:\n%s", output)
	}
}

func TestCheck_MissingRoot(t *testing.T) {
	t.Setenv(tempdir.EnvRoot, "")

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"check"})

	testutil.CaptureOutput(t, func() error {
		if err := cmd.Execute(); err == nil {
			t.Error("check without a configured root should fail")
		}
		return nil
	})
}

func TestCheck_JSONOutput(t *testing.T) {
	t.Setenv(tempdir.EnvRoot, t.TempDir())

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"check", "-o", "json"})

	output := testutil.CaptureOutput(t, func() error {
		return cmd.Execute()
	})

	var results []map[string]any
	if err := json.Unmarshal([]byte(output), &results); err != nil {
		t.Fatalf("check -o json produced invalid JSON: %v\n%s", err, output)
	}
	if len(results) == 0 {
		t.Fatal("check -o json returned no results")
	}
	if results[0]["name"] != "root" {
		t.Errorf("first check = %v, want root", results[0]["name"])
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	t.Setenv(tempdir.EnvRoot, t.TempDir())

	cmd := NewRootCommand(version.New("azd-sandbox"))
	cmd.SetArgs([]string{"check", "-o", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Error("invalid output format should fail")
	}
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package preflight

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/jongio/azd-sandbox/tempdir"
)

// MinFreeBytes is the free-space floor below which the disk check warns (256 MiB).
const MinFreeBytes uint64 = 256 << 20

// Result holds the result of one preflight check.
type Result struct {
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message" yaml:"message"`
	Warning bool   `json:"warning,omitempty" yaml:"warning,omitempty"` // True if this is a warning, not an error.
}

// Checker runs preflight checks against the sandbox root.
type Checker struct {
	results []Result
	errors  int
}

// NewChecker creates a new checker.
func NewChecker() *Checker {
	return &Checker{
		results: make([]Result, 0),
	}
}

// Results returns all check results.
func (c *Checker) Results() []Result {
	return c.results
}

// HasErrors returns true if any check failed.
func (c *Checker) HasErrors() bool {
	return c.errors > 0
}

// pass records a successful check.
func (c *Checker) pass(name, message string) {
	c.results = append(c.results, Result{
		Name:    name,
		Passed:  true,
		Message: message,
	})
}

// warn records a warning (not a failure).
func (c *Checker) warn(name, message string) {
	c.results = append(c.results, Result{
		Name:    name,
		Passed:  true,
		Message: message,
		Warning: true,
	})
}

// fail records a check failure.
func (c *Checker) fail(name, message string) {
	c.results = append(c.results, Result{
		Name:    name,
		Passed:  false,
		Message: message,
	})
	c.errors++
}

// CheckAll runs every preflight check. Checks that need a usable root are
// skipped once the root itself fails.
func (c *Checker) CheckAll() {
	root, err := tempdir.Root()
	if err != nil {
		c.fail("root", fmt.Sprintf("%v (export %s before running)", err, tempdir.EnvRoot))
		return
	}
	c.pass("root", fmt.Sprintf("configured: %s", root))

	c.CheckRootDirectory(root)
	if c.HasErrors() {
		return
	}

	c.CheckRootWritable(root)
	c.CheckRootPermissions(root)
	c.CheckDiskSpace(root)
}

// CheckRootDirectory checks that the root exists and is a directory.
func (c *Checker) CheckRootDirectory(root string) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			c.fail("directory", fmt.Sprintf("does not exist: %s (create it or point %s elsewhere)", root, tempdir.EnvRoot))
		} else {
			c.fail("directory", fmt.Sprintf("cannot access: %v", err))
		}
		return
	}

	if !info.IsDir() {
		c.fail("directory", fmt.Sprintf("not a directory: %s", root))
		return
	}

	c.pass("directory", fmt.Sprintf("exists: %s", root))
}

// CheckRootWritable checks that files can be created under the root. The
// probe file is removed again; a probe that cannot be removed is reported as
// a warning since later cleanup will hit the same wall.
func (c *Checker) CheckRootWritable(root string) {
	probe, err := os.CreateTemp(root, ".preflight-*")
	if err != nil {
		c.fail("writable", fmt.Sprintf("cannot create files under %s: %v", root, err))
		return
	}

	name := probe.Name()
	_ = probe.Close()

	if err := os.Remove(name); err != nil {
		c.warn("writable", fmt.Sprintf("probe file could not be removed: %v", err))
		return
	}

	c.pass("writable", "probe file created and removed")
}

// CheckRootPermissions warns when the root is group or world writable.
// On Windows the check is skipped as Windows uses ACLs.
func (c *Checker) CheckRootPermissions(root string) {
	if runtime.GOOS == "windows" {
		c.pass("permissions", "skipped (Windows uses ACLs)")
		return
	}

	info, err := os.Stat(root)
	if err != nil {
		c.warn("permissions", fmt.Sprintf("cannot stat root: %v", err))
		return
	}

	if info.Mode().Perm()&0022 != 0 {
		c.warn("permissions", fmt.Sprintf("root is group or world writable (%v)", info.Mode().Perm()))
		return
	}

	c.pass("permissions", fmt.Sprintf("mode %v", info.Mode().Perm()))
}

// CheckDiskSpace warns when the filesystem holding the root is low on space.
func (c *Checker) CheckDiskSpace(root string) {
	usage, err := disk.Usage(root)
	if err != nil {
		c.warn("disk", fmt.Sprintf("cannot read usage: %v", err))
		return
	}

	if usage.Free < MinFreeBytes {
		c.warn("disk", fmt.Sprintf("only %d MiB free (%.1f%% used)", usage.Free>>20, usage.UsedPercent))
		return
	}

	c.pass("disk", fmt.Sprintf("%d MiB free (%.1f%% used)", usage.Free>>20, usage.UsedPercent))
}

// PrintResults writes check results to a writer.
func (c *Checker) PrintResults(w io.Writer) {
	for _, r := range c.results {
		var prefix string
		if r.Passed {
			if r.Warning {
				prefix = "⚠"
			} else {
				prefix = "✓"
			}
		} else {
			prefix = "✗"
		}
		fmt.Fprintf(w, "%s %s: %s\n", prefix, r.Name, r.Message)
	}

	fmt.Fprintln(w)
	if c.HasErrors() {
		fmt.Fprintf(w, "Preflight failed with %d error(s)\n", c.errors)
	} else {
		fmt.Fprintln(w, "Sandbox root is ready")
	}
}

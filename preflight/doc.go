// Package preflight diagnoses sandbox root problems before a harness run.
//
// A misconfigured root surfaces as confusing mid-run failures: directories
// that cannot be created, cleanup that cannot delete, disks that fill up
// halfway through a suite. Running the checks up front turns those into one
// readable report.
//
// # Checks
//
//   - root: AZD_SANDBOX_ROOT is set and resolvable
//   - directory: the root exists and is a directory
//   - writable: a probe file can be created and removed under the root
//   - permissions: the root is not group or world writable (Unix only)
//   - disk: the filesystem holding the root has headroom
//
// Failures mark the run unusable; warnings flag conditions worth fixing but
// not fatal. The checks never mutate the root beyond the writable probe,
// which is removed again.
//
// # Example Usage
//
//	checker := preflight.NewChecker()
//	checker.CheckAll()
//	checker.PrintResults(os.Stdout)
//	if checker.HasErrors() {
//	    os.Exit(1)
//	}
package preflight

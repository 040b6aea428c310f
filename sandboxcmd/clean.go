// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sandboxcmd

import (
	"github.com/spf13/cobra"

	"github.com/jongio/azd-sandbox/cliout"
	"github.com/jongio/azd-sandbox/tempdir"
)

func newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <path>",
		Short: "Remove a sandbox directory and everything below it",
		Long: `Clean removes the top-level component of the given sandbox-relative path,
mirroring what auto-removal does for handles: cleaning "foo/bar" removes
"foo" and everything below it. Cleaning a path that does not exist succeeds.

The path is sanitized first, so clean can never touch anything outside the
sandbox root, and never the root itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tempdir.Remove(args[0]); err != nil {
				return err
			}

			return cliout.Print(map[string]string{"removed": args[0]}, func() {
				cliout.Success("Removed %s", args[0])
			})
		},
	}
}

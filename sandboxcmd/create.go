// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sandboxcmd

import (
	"github.com/spf13/cobra"

	"github.com/jongio/azd-sandbox/cliout"
	"github.com/jongio/azd-sandbox/tempdir"
)

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [path]",
		Short: "Create a directory under the sandbox root",
		Long: `Create makes a directory at the given sandbox-relative path, including any
missing parents. Without a path argument, a uniquely named "test-" directory
is created directly under the root.

The resolved absolute path is printed, so shell harnesses can capture it:

  dir=$(azd-sandbox create itest/logs -o json | jq -r .path)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				dir *tempdir.Dir
				err error
			)
			if len(args) == 0 {
				dir, err = tempdir.New()
			} else {
				dir, err = tempdir.WithPath(args[0])
			}
			if err != nil {
				return err
			}

			return cliout.Print(map[string]string{"path": dir.Path()}, func() {
				cliout.Success("Created %s", dir.Path())
			})
		},
	}
}

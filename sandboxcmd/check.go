// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sandboxcmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-sandbox/cliout"
	"github.com/jongio/azd-sandbox/preflight"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run preflight checks against the sandbox root",
		Long: `Check verifies that the sandbox root is usable: configured, existing,
writable, with sane permissions and disk headroom. It exits non-zero when
any check fails, so harness setup scripts can gate on it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := preflight.NewChecker()
			checker.CheckAll()

			if err := cliout.Print(checker.Results(), func() {
				checker.PrintResults(os.Stdout)
			}); err != nil {
				return err
			}

			if checker.HasErrors() {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}

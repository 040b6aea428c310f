// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package sandboxcmd assembles the azd-sandbox command tree. The commands
// are plain cobra commands, so harnesses can also mount them under their own
// root command instead of shipping the standalone binary.
package sandboxcmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/azd-sandbox/cliout"
	"github.com/jongio/azd-sandbox/logutil"
	"github.com/jongio/azd-sandbox/version"
)

// NewRootCommand builds the azd-sandbox root command with all subcommands
// attached.
func NewRootCommand(info *version.Info) *cobra.Command {
	var (
		outputFormat string
		debug        bool
	)

	rootCmd := &cobra.Command{
		Use:   "azd-sandbox",
		Short: "Manage sandboxed temporary directories for test harnesses",
		Long: `azd-sandbox creates, checks, and cleans temporary directories under a
single sandbox root named by the AZD_SANDBOX_ROOT environment variable.

Paths are sanitized before every operation: they cannot contain "..", cannot
be absolute, and always resolve inside the root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, false)
			cmd.Flags().Visit(func(f *pflag.Flag) {
				logutil.Debug("flag set", "name", f.Name, "value", f.Value.String())
			})
			return cliout.SetFormat(outputFormat)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(version.NewCommand(info, &outputFormat))

	return rootCmd
}

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/azd-sandbox/cliout"
)

// NewCommand creates a version command that displays version info.
// outputFormat is an optional pointer to a global output format flag
// ("json", "yaml"). If nil, defaults to human-readable output.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := ""
			if outputFormat != nil {
				format = *outputFormat
			}

			switch format {
			case "json":
				return cliout.PrintJSON(info)
			case "yaml":
				return cliout.PrintYAML(info)
			}

			if quiet {
				fmt.Println(info.Version)
				return nil
			}

			cliout.Header(fmt.Sprintf("%s Version", info.Name))
			cliout.Label("Version", info.Version)
			cliout.Label("Build Date", info.BuildDate)
			cliout.Label("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}

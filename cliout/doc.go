// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (human-readable, JSON, YAML)
//   - ANSI color support with terminal detection
//   - Unicode detection with ASCII fallbacks for legacy terminals
//
// # Basic Usage
//
//	import "github.com/jongio/azd-sandbox/cliout"
//
//	// Print success message
//	cliout.Success("Created %s", dir)
//
//	// Print error message
//	cliout.Error("Cleanup failed: %s", err)
//
//	// Print warning
//	cliout.Warning("Root is world writable")
//
// # Output Formats
//
// The package supports three output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//   - yaml: Structured YAML output
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    return err
//	}
//
// # Hybrid Output
//
// The Print function supports hybrid output where you provide both the data
// and a formatter function:
//
//	err := cliout.Print(results, func() {
//	    checker.PrintResults(os.Stdout)
//	})
//
// In JSON or YAML mode the data is marshaled; in default mode the formatter
// is called.
//
// # Colors and Symbols
//
// Colors are disabled automatically when stdout is not a terminal, and can
// be forced on or off with ForceColor and NoColor. Unicode symbols fall back
// to ASCII on terminals that cannot display them (detection covers Windows
// Terminal, VS Code, and ConEmu; old cmd.exe gets ASCII).
package cliout

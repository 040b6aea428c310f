// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"

	"github.com/jongio/azd-sandbox/sandboxcmd"
	"github.com/jongio/azd-sandbox/version"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	info := version.New("azd-sandbox")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	if err := sandboxcmd.NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

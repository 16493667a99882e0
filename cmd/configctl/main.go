// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command configctl resolves configurations the way an application using the
// store would and prints them.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-config-manager/internal/command"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if buildVersion != "" {
		command.Version = buildVersion
	}
	if buildDate != "" {
		command.BuildTime = buildDate
	}
	if buildCommit != "" {
		command.Commit = buildCommit
	}

	app := command.App()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

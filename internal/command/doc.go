// Package command provides the CLI command definitions for configctl.
//
// It uses urfave/cli/v2 for command parsing. The global flags configure a
// single store.Store, created in the Before hook and shared by all commands
// through the application metadata.
package command

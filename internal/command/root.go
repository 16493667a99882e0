// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-config-manager/internal/config"
	"github.com/MKhiriev/go-config-manager/internal/logger"
	"github.com/MKhiriev/go-config-manager/internal/store"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const storeKey = "store"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "configctl",
		Usage:    "Resolve configurations from files and environment variables",
		Version:  fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			ShowCommand(),
			GetCommand(),
			SettingsCommand(),
		},
		Before: func(c *cli.Context) error {
			s, err := newStore(c)
			if err != nil {
				return err
			}
			c.App.Metadata[storeKey] = s
			return nil
		},
	}
}

// globalFlags returns the global CLI flags. Unset flags leave the values
// read by the store from NCM_CONFIG_DIR, NCM_ENV and NCM_CAMEL_CASE.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Configuration directory (default: ./config/)",
		},
		&cli.StringFlag{
			Name:    "env",
			Aliases: []string{"e"},
			Usage:   "Environment name; files in <dir>/<env>/ override the defaults",
		},
		&cli.BoolFlag{
			Name:  "camel-case",
			Usage: "Build camelCase keys from environment variables",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml",
			Value:   formatJSON,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging on stderr",
		},
	}
}

func newStore(c *cli.Context) (*store.Store, error) {
	level := zerolog.WarnLevel
	if c.Bool("verbose") {
		level = zerolog.TraceLevel
	}
	log := logger.NewConsoleLogger(c.App.Name, c.App.ErrWriter, level)

	s, err := store.New(store.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	overrides := config.Settings{
		ConfigDir: c.String("dir"),
		Env:       c.String("env"),
		CamelCase: c.Bool("camel-case"),
	}
	if err := s.Init(overrides); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	return s, nil
}

// GetStore retrieves the store from context.
func GetStore(c *cli.Context) (*store.Store, error) {
	if s, ok := c.App.Metadata[storeKey].(*store.Store); ok {
		return s, nil
	}
	return nil, errNoStore
}

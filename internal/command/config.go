// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-config-manager/internal/config"
)

// ShowCommand returns the show command.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the resolved configurations",
		ArgsUsage: "NAME [NAME...]",
		Action:    showAction,
	}
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print one value of a configuration",
		ArgsUsage: "NAME PATH",
		Description: "PATH is a dot-separated key path, for example colors.blue.\n" +
			"An empty PATH prints the whole configuration.",
		Action: getAction,
	}
}

// SettingsCommand returns the settings command.
func SettingsCommand() *cli.Command {
	return &cli.Command{
		Name:   "settings",
		Usage:  "Print the effective store settings",
		Action: settingsAction,
	}
}

// showAction prints every configuration that could be loaded and reports
// the failures of the others together.
func showAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: NAME", ErrMissingArgument)
	}

	s, err := GetStore(c)
	if err != nil {
		return err
	}

	var errs error
	out := make(map[string]any, c.NArg())
	for _, name := range c.Args().Slice() {
		if err := s.AddConfig(name); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		cfg, _ := s.GetConfig(name)
		out[name] = cfg.Map()
	}

	if len(out) > 0 {
		if err := writeOutput(c.App.Writer, c.String("output"), out); err != nil {
			return err
		}
	}

	return errs
}

func getAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: NAME", ErrMissingArgument)
	}
	name, path := c.Args().Get(0), c.Args().Get(1)

	s, err := GetStore(c)
	if err != nil {
		return err
	}

	if err := s.AddConfig(name); err != nil {
		return err
	}
	cfg, _ := s.GetConfig(name)

	v, ok := cfg.Lookup(path)
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrKeyNotFound, path, name)
	}

	return writeOutput(c.App.Writer, c.String("output"), v.Interface())
}

func settingsAction(c *cli.Context) error {
	s, err := GetStore(c)
	if err != nil {
		return err
	}

	out := make(map[string]any, len(config.Keys))
	for _, key := range config.Keys {
		v, err := s.Get(key)
		if err != nil {
			return err
		}
		out[key] = v
	}

	return writeOutput(c.App.Writer, c.String("output"), out)
}

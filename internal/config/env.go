// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envSettings mirrors [Settings] with the raw environment values. CamelCase
// stays a string so that anything other than "true" means false instead of
// failing the parse.
type envSettings struct {
	ConfigDir string `env:"NCM_CONFIG_DIR"`
	Env       string `env:"NCM_ENV"`
	CamelCase string `env:"NCM_CAMEL_CASE"`
}

// parseEnv reads the session variables from environ using the caarlos0/env
// library.
//
// Returns a wrapped error if env.ParseWithOptions fails.
func parseEnv(environ map[string]string) (Settings, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	var raw envSettings
	if err := env.ParseWithOptions(&raw, env.Options{Environment: environ}); err != nil {
		return Settings{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return Settings{
		ConfigDir: raw.ConfigDir,
		Env:       raw.Env,
		CamelCase: raw.CamelCase == "true",
	}, nil
}

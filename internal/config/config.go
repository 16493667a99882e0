// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Setting keys accepted by the store's Get and Set operations.
const (
	KeyConfigDir = "configDir"
	KeyEnv       = "env"
	KeyCamelCase = "camelCase"
)

// Keys lists every known setting key.
var Keys = []string{KeyConfigDir, KeyEnv, KeyCamelCase}

// DefaultConfigDir is the configuration directory used when none is given,
// relative to the working directory.
const DefaultConfigDir = "config/"

// Settings holds the session-wide options of a configuration store.
type Settings struct {
	// ConfigDir is the directory holding the default configuration files.
	// Environment-specific files live in ConfigDir/Env. After [Load] or
	// [Apply] it is absolute and ends with a path separator.
	// Env: NCM_CONFIG_DIR
	ConfigDir string

	// Env is the environment name (e.g. "production"). Empty means only the
	// default files are used.
	// Env: NCM_ENV
	Env string

	// CamelCase selects camelCase keys for environment overrides
	// (LOGGER__WITH_COLOR → withColor) instead of snake_case (with_color).
	// Env: NCM_CAMEL_CASE
	CamelCase bool
}

// Default returns the built-in settings before normalisation.
func Default() Settings {
	return Settings{
		ConfigDir: DefaultConfigDir,
		Env:       "",
		CamelCase: false,
	}
}

// IsKnownKey reports whether key is one of [Keys].
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Load builds the settings from the defaults and the environment variables
// in environ, then applies the non-zero fields of every override in order.
func Load(environ map[string]string, overrides ...Settings) (Settings, error) {
	b := newSettingsBuilder().withDefaults().withEnv(environ)
	for _, o := range overrides {
		b = b.withOverride(o)
	}
	return b.build()
}

// Apply returns base with the non-zero fields of override applied. A false
// CamelCase in override never clears a true one in base.
func Apply(base, override Settings) (Settings, error) {
	return newSettingsBuilder().withOverride(base).withOverride(override).build()
}

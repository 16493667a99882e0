// Package config provides the session settings of a configuration store:
// the configuration directory, the environment name and the key naming mode.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults ([Default])
//  2. Environment variables (NCM_CONFIG_DIR, NCM_ENV, NCM_CAMEL_CASE)
//  3. Explicit overrides passed by the application
//
// The main entry point is [Load]; [Apply] merges further overrides onto an
// existing value.
package config

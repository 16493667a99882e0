package config

import "errors"

// ErrInvalidConfigDir indicates that the configuration directory cannot be
// resolved to an absolute path.
var ErrInvalidConfigDir = errors.New("invalid configuration directory")

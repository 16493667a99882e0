package loader

import "errors"

var (
	// ErrNotFound is returned by [FileLoader.Load] when no file with a
	// supported extension exists for the requested name.
	ErrNotFound = errors.New("configuration file not found")

	// ErrFileParse is returned when a configuration file exists but its
	// content is not a valid JSON or YAML mapping.
	ErrFileParse = errors.New("error parsing configuration file")
)

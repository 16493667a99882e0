package command

import "errors"

var (
	// ErrMissingArgument is returned when a command is called without its
	// required arguments.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnknownFormat is returned for an --output value other than json or yaml.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrKeyNotFound is returned by get when the path does not exist.
	ErrKeyNotFound = errors.New("key not found")

	// errNoStore is returned when a command runs without the Before hook.
	errNoStore = errors.New("config store is not initialized")
)

package store

import "errors"

// Sentinel errors returned by [Store] methods. Callers should use
// [errors.Is] to match against these values; returned errors carry the
// offending name, key or value as context.
var (
	// ErrBadParameter is returned when a required argument is missing, such as
	// an empty configuration name or setting key.
	ErrBadParameter = errors.New("bad parameter")

	// ErrBadType is returned by Set when the value does not have the type of
	// the setting: string for configDir and env, bool for camelCase.
	ErrBadType = errors.New("bad type")

	// ErrUnknownOption is returned by Get and Set for a key that is not a
	// known setting.
	ErrUnknownOption = errors.New("this option does not exist")

	// ErrAlreadyInitialized is returned by Init and Set once at least one
	// configuration is loaded.
	ErrAlreadyInitialized = errors.New("the config manager can not be initialized anymore because there are configs already loaded")

	// ErrAlreadyLoaded is returned by AddConfig for a name already in the
	// store.
	ErrAlreadyLoaded = errors.New("this config is already loaded")

	// ErrNotLoaded is returned by RemoveConfig for a name missing from the
	// store.
	ErrNotLoaded = errors.New("this config is not loaded")

	// ErrConfigNotFound is returned by AddConfig when neither a file nor an
	// environment variable provides any data for the name.
	ErrConfigNotFound = errors.New("no file for this config")
)

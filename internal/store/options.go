package store

import (
	"os"
	"strings"

	"github.com/MKhiriev/go-config-manager/internal/loader"
	"github.com/MKhiriev/go-config-manager/internal/logger"
)

// Option is a function that configures the Store.
type Option func(*Store)

// WithFileLoader sets the loader used to read configuration files.
func WithFileLoader(l loader.FileLoader) Option {
	return func(s *Store) {
		s.files = l
	}
}

// WithEnviron sets the source of environment variables. It is called when
// the store is created and on every AddConfig.
func WithEnviron(environ func() map[string]string) Option {
	return func(s *Store) {
		s.environ = environ
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// OSEnviron returns the process environment as a map.
func OSEnviron() map[string]string {
	vars := os.Environ()
	environ := make(map[string]string, len(vars))
	for _, kv := range vars {
		name, value, _ := strings.Cut(kv, "=")
		environ[name] = value
	}
	return environ
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-config-manager/internal/config"
	"github.com/MKhiriev/go-config-manager/internal/fragment"
	"github.com/MKhiriev/go-config-manager/internal/loader"
	"github.com/MKhiriev/go-config-manager/internal/logger"
	"github.com/MKhiriev/go-config-manager/internal/parser"
)

// Accessor returns the current content of one configuration. It reads the
// store on every call and reports false once the configuration is removed.
type Accessor func() (fragment.Fragment, bool)

// Store keeps the loaded configurations by name.
//
// All methods are safe for concurrent use, but the settings are meant to be
// fixed during a single initialisation phase before the first AddConfig.
type Store struct {
	mu       sync.RWMutex
	configs  map[string]fragment.Fragment
	methods  map[string]string // accessor name -> configuration name
	settings config.Settings

	files   loader.FileLoader
	environ func() map[string]string
	log     *logger.Logger
}

// New creates an empty store. Its settings are derived from the
// NCM_CONFIG_DIR, NCM_ENV and NCM_CAMEL_CASE variables of the environment
// source, falling back to the defaults of package config.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		configs: make(map[string]fragment.Fragment),
		methods: make(map[string]string),
		environ: OSEnviron,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.files == nil {
		s.files = loader.NewFileManager(s.log)
	}
	s.log = s.log.Component("store")

	settings, err := config.Load(s.environ())
	if err != nil {
		return nil, fmt.Errorf("error loading store settings: %w", err)
	}
	s.settings = settings

	s.log.Debug().
		Str("configDir", settings.ConfigDir).
		Str("env", settings.Env).
		Bool("camelCase", settings.CamelCase).
		Msg("create config store")

	return s, nil
}

// Init applies the non-zero fields of overrides to the current settings.
// It fails with ErrAlreadyInitialized when a configuration is loaded.
func (s *Store) Init(overrides config.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.configs) > 0 {
		return ErrAlreadyInitialized
	}

	settings, err := config.Apply(s.settings, overrides)
	if err != nil {
		return fmt.Errorf("error initializing store: %w", err)
	}
	s.settings = settings

	s.log.Debug().
		Str("configDir", settings.ConfigDir).
		Str("env", settings.Env).
		Bool("camelCase", settings.CamelCase).
		Msg("initialize config store")

	return nil
}

// Set changes one setting. The value must be a string for configDir and env
// and a bool for camelCase. Like Init, Set fails with ErrAlreadyInitialized
// once a configuration is loaded.
func (s *Store) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: empty setting key", ErrBadParameter)
	}
	if !config.IsKnownKey(key) {
		return fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.configs) > 0 {
		return ErrAlreadyInitialized
	}

	switch key {
	case config.KeyConfigDir:
		dir, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w, this parameter must be a string - %v", ErrBadType, value)
		}
		normalized, err := config.NormalizeDir(dir)
		if err != nil {
			return err
		}
		s.settings.ConfigDir = normalized
	case config.KeyEnv:
		env, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w, this parameter must be a string - %v", ErrBadType, value)
		}
		s.settings.Env = env
	case config.KeyCamelCase:
		camelCase, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w, this parameter must be a boolean - %v", ErrBadType, value)
		}
		s.settings.CamelCase = camelCase
	}

	s.log.Debug().Str("key", key).Interface("value", value).Msg("set store option")
	return nil
}

// Get returns the current value of a setting: a string for configDir and
// env, a bool for camelCase.
func (s *Store) Get(key string) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty setting key", ErrBadParameter)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	switch key {
	case config.KeyConfigDir:
		return s.settings.ConfigDir, nil
	case config.KeyEnv:
		return s.settings.Env, nil
	case config.KeyCamelCase:
		return s.settings.CamelCase, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() config.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// AddConfig loads the configuration called name and adds it to the store.
//
// The default file is overridden by the environment-specific file, which is
// overridden by the NAME__* environment variables (name upper-cased). It
// fails with ErrAlreadyLoaded if name is in the store and with
// ErrConfigNotFound if no layer provides any key. On failure the store is
// left unchanged.
func (s *Store) AddConfig(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty configuration name", ErrBadParameter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[name]; ok {
		return fmt.Errorf("%w - %s", ErrAlreadyLoaded, name)
	}

	cfg, err := s.resolve(name)
	if err != nil {
		return err
	}
	if cfg.IsEmpty() {
		return fmt.Errorf("%w - %s", ErrConfigNotFound, name)
	}

	s.configs[name] = cfg
	s.methods[MethodName(name)] = name

	s.log.Debug().Str("name", name).Strs("keys", cfg.Keys()).Msg("config added")
	return nil
}

// resolve merges the three layers of name. It must be called with s.mu held.
func (s *Store) resolve(name string) (fragment.Fragment, error) {
	merged, err := s.loadFile(s.settings.ConfigDir, name)
	if err != nil {
		return nil, err
	}

	if s.settings.Env != "" {
		specific, err := s.loadFile(filepath.Join(s.settings.ConfigDir, s.settings.Env), name)
		if err != nil {
			return nil, err
		}
		merged = fragment.DeepMerge(merged, specific)
	}

	prefix := strings.ToUpper(name)
	overlay, err := parser.ParseOverlay(s.environ(), prefix, s.settings.CamelCase)
	if err != nil {
		return nil, fmt.Errorf("error parsing environment overrides for %s: %w", name, err)
	}

	return fragment.DeepMerge(merged, parser.Unwrap(overlay, prefix, s.settings.CamelCase)), nil
}

// loadFile treats a missing file as an empty layer.
func (s *Store) loadFile(dir, name string) (fragment.Fragment, error) {
	cfg, err := s.files.Load(dir, name)
	if errors.Is(err, loader.ErrNotFound) {
		s.log.Trace().Str("dir", dir).Str("name", name).Msg("no config file")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config %s: %w", name, err)
	}
	return cfg, nil
}

// RemoveConfig drops the configuration called name and its accessor.
func (s *Store) RemoveConfig(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty configuration name", ErrBadParameter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[name]; !ok {
		return fmt.Errorf("%w - %s", ErrNotLoaded, name)
	}

	delete(s.configs, name)
	method := MethodName(name)
	if s.methods[method] == name {
		delete(s.methods, method)
	}

	s.log.Debug().Str("name", name).Msg("config removed")
	return nil
}

// GetConfig returns the configuration called name. The returned fragment is
// shared with the store and must not be modified.
func (s *Store) GetConfig(name string) (fragment.Fragment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[name]
	return cfg, ok
}

// Accessor returns the accessor registered under method, the configuration
// name with its first letter upper-cased and the rest lower-cased
// ("logger" → "Logger").
func (s *Store) Accessor(method string) (Accessor, bool) {
	s.mu.RLock()
	name, ok := s.methods[method]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	return func() (fragment.Fragment, bool) {
		return s.GetConfig(name)
	}, true
}

// Count returns the number of loaded configurations.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.configs)
}

// Names returns the loaded configuration names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.configs))
	for name := range s.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MethodName returns the accessor name of a configuration.
func MethodName(name string) string {
	return parser.Titlecase(name)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-config-manager/internal/fragment"
	"github.com/MKhiriev/go-config-manager/internal/logger"
)

// Extensions lists the supported file extensions in lookup priority order.
var Extensions = []string{".json", ".yaml", ".yml"}

type decodeFunc func(data []byte) (fragment.Fragment, error)

var decoders = map[string]decodeFunc{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

// FileManager is the [FileLoader] backed by the OS file system.
type FileManager struct {
	log *logger.Logger
}

// NewFileManager returns a FileManager logging its lookups to log.
// A nil log disables logging.
func NewFileManager(log *logger.Logger) *FileManager {
	if log == nil {
		log = logger.Nop()
	}
	return &FileManager{log: log.Component("loader")}
}

// Load implements [FileLoader].
func (m *FileManager) Load(dir, name string) (fragment.Fragment, error) {
	path, ext, err := m.lookup(dir, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file %s: %w", path, err)
	}

	cfg, err := decoders[ext](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.log.Debug().Str("path", path).Int("keys", len(cfg)).Msg("loaded configuration file")
	return cfg, nil
}

// lookup returns the first existing candidate for name in dir, in the order
// of [Extensions]. For each extension an exact file name is preferred over a
// case-insensitive match among the entries of dir.
func (m *FileManager) lookup(dir, name string) (string, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("%w: %s in %s", ErrNotFound, name, dir)
		}
		return "", "", fmt.Errorf("error listing configuration directory %s: %w", dir, err)
	}

	for _, ext := range Extensions {
		want := name + ext
		m.log.Trace().Str("path", filepath.Join(dir, want)).Msg("lookup the config file")

		folded := ""
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if entry.Name() == want {
				return filepath.Join(dir, want), ext, nil
			}
			if folded == "" && strings.EqualFold(entry.Name(), want) {
				folded = entry.Name()
			}
		}
		if folded != "" {
			return filepath.Join(dir, folded), ext, nil
		}
	}

	return "", "", fmt.Errorf("%w: %s in %s", ErrNotFound, name, dir)
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	layers []Settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]Settings, 0, 4),
	}
}

func (b *settingsBuilder) build() (Settings, error) {
	if b.err != nil {
		return Settings{}, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	var settings Settings
	for _, layer := range b.layers {
		if err := mergo.Merge(&settings, layer, mergo.WithOverride); err != nil {
			return Settings{}, fmt.Errorf("error merging settings: %w", err)
		}
	}

	dir, err := NormalizeDir(settings.ConfigDir)
	if err != nil {
		return Settings{}, err
	}
	settings.ConfigDir = dir

	return settings, nil
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, Default())
	return b
}

func (b *settingsBuilder) withEnv(environ map[string]string) *settingsBuilder {
	envSettings, err := parseEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings)
	return b
}

func (b *settingsBuilder) withOverride(o Settings) *settingsBuilder {
	b.layers = append(b.layers, o)
	return b
}

// NormalizeDir resolves dir against the working directory and appends a
// trailing path separator. An empty dir is the working directory; the
// [DefaultConfigDir] fallback comes from the defaults layer of [Load].
func NormalizeDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidConfigDir, dir, err)
	}

	sep := string(filepath.Separator)
	if !strings.HasSuffix(abs, sep) {
		abs += sep
	}
	return abs, nil
}

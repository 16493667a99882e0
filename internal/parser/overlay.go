// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-config-manager/internal/fragment"
)

// ParseOverlay builds a configuration tree from the variables of env whose
// name starts with namePrefix followed by "__".
//
// The tree is rooted at the key built from namePrefix itself, so
// LOGGER__WITH_COLOR=false with prefix LOGGER yields
// {logger: {withColor: false}} in camelCase mode. Use [Unwrap] to get the
// sub-tree of the configuration. Variables are applied in name order; a
// deeper variable turns a scalar written by a shorter one into a mapping.
// Values are coerced with [Coerce], resolving tags against env.
func ParseOverlay(env map[string]string, namePrefix string, camelCase bool) (fragment.Fragment, error) {
	prefix := namePrefix + LevelSeparator

	names := make([]string, 0)
	for name := range env {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	root := fragment.Fragment{}
	for _, name := range names {
		value, err := Coerce(env[name], env)
		if err != nil {
			return nil, fmt.Errorf("environment variable %s: %w", name, err)
		}
		set(root, BuildPath(name, camelCase), value)
	}

	return root, nil
}

// Unwrap returns the sub-tree of an overlay built by [ParseOverlay] for
// namePrefix, or nil when the overlay has none. A namePrefix containing "__"
// spans several levels of the overlay.
func Unwrap(overlay fragment.Fragment, namePrefix string, camelCase bool) fragment.Fragment {
	own := overlay
	for _, key := range BuildPath(namePrefix, camelCase) {
		next, ok := own[key].AsMapping()
		if !ok {
			return nil
		}
		own = next
	}
	return own
}

func set(root fragment.Fragment, path []string, value fragment.Value) {
	current := root
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].AsMapping()
		if !ok {
			next = fragment.Fragment{}
			current[key] = fragment.Mapping(next)
		}
		current = next
	}
	current[path[len(path)-1]] = value
}

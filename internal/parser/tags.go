// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxTagResolutions bounds the number of substitution passes performed by
// [ResolveTags] on a single string.
const MaxTagResolutions = 64

var tagRegex = regexp.MustCompile(`\$\{([a-zA-Z_]+)\}`)

// ResolveTags replaces every ${NAME} tag in raw with env[NAME], repeating
// until no tag is left, so values may chain (A=${B}, B=test).
//
// An unset or empty variable fails with [ErrUnknownTag]. A chain that comes
// back to a string it already produced, or that needs more than
// [MaxTagResolutions] passes, fails with [ErrTagResolution].
func ResolveTags(raw string, env map[string]string) (string, error) {
	seen := map[string]struct{}{raw: {}}
	str := raw

	for pass := 0; ; pass++ {
		match := tagRegex.FindStringSubmatch(str)
		if match == nil {
			return str, nil
		}
		if pass >= MaxTagResolutions {
			return "", fmt.Errorf("%w: %q after %d passes", ErrTagResolution, raw, pass)
		}

		tag, name := match[0], match[1]
		resolved := env[name]
		if resolved == "" {
			return "", fmt.Errorf("%w: %s", ErrUnknownTag, tag)
		}

		str = strings.ReplaceAll(str, tag, resolved)
		if _, ok := seen[str]; ok {
			return "", fmt.Errorf("%w: %q refers back to itself through %s", ErrTagResolution, raw, tag)
		}
		seen[str] = struct{}{}
	}
}

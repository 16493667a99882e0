// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters used in environment variable names.
const (
	LevelSeparator = "__"
	TokenSeparator = "_"
)

// BuildKey joins tokens into a single configuration key.
//
// Every token is lower-cased. In camelCase mode the tokens after the first
// are title-cased and concatenated (convertStrArrayToString), otherwise they
// are joined with an underscore (convert_str_array_to_string).
func BuildKey(tokens []string, camelCase bool) string {
	var b strings.Builder
	for i, token := range tokens {
		token = strings.ToLower(token)
		switch {
		case i == 0:
			b.WriteString(token)
		case camelCase:
			b.WriteString(Titlecase(token))
		default:
			b.WriteString(TokenSeparator)
			b.WriteString(token)
		}
	}
	return b.String()
}

// BuildPath splits an environment variable name into levels on "__" and
// builds one key per level with [BuildKey].
func BuildPath(name string, camelCase bool) []string {
	levels := strings.Split(name, LevelSeparator)
	path := make([]string, len(levels))
	for i, level := range levels {
		path[i] = BuildKey(strings.Split(level, TokenSeparator), camelCase)
	}
	return path
}

// Titlecase upper-cases the first letter of s and lower-cases the rest.
func Titlecase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

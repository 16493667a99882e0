// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-manager/internal/fragment"
)

// Explicit type prefixes accepted by [Coerce].
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

var typePrefixRegex = regexp.MustCompile(`(?s)^ncm_(string|number|boolean):(.*)$`)

// Coerce resolves the tags in raw and converts the result into a typed value.
//
// A value of the form ncm_<type>:<payload> is converted explicitly:
// ncm_string keeps the payload verbatim, ncm_boolean is true only for the
// payload "true" and ncm_number parses the payload as a number.
// Anything else is inferred: "true" and "false" become booleans, numeric
// strings become numbers and everything else stays a string.
func Coerce(raw string, env map[string]string) (fragment.Value, error) {
	str, err := ResolveTags(raw, env)
	if err != nil {
		return fragment.Value{}, err
	}

	if m := typePrefixRegex.FindStringSubmatch(str); m != nil {
		return coerceExplicit(m[1], m[2])
	}

	return infer(str), nil
}

// CoerceValue coerces string values with [Coerce] and returns every other
// kind unchanged.
func CoerceValue(v fragment.Value, env map[string]string) (fragment.Value, error) {
	s, ok := v.AsString()
	if !ok {
		return v, nil
	}
	return Coerce(s, env)
}

func coerceExplicit(kind, payload string) (fragment.Value, error) {
	switch kind {
	case TypeString:
		return fragment.String(payload), nil
	case TypeBoolean:
		return fragment.Bool(payload == "true"), nil
	case TypeNumber:
		v, ok := parseNumber(payload)
		if !ok {
			return fragment.Value{}, fmt.Errorf("%w: %q", ErrBadNumber, payload)
		}
		return v, nil
	default:
		return fragment.Null(), nil
	}
}

func infer(str string) fragment.Value {
	switch str {
	case "true":
		return fragment.Bool(true)
	case "false":
		return fragment.Bool(false)
	}

	if v, ok := parseNumber(str); ok {
		return v
	}

	return fragment.String(str)
}

// parseNumber accepts decimal, exponent, and 0x/0o/0b integer literals with an
// optional sign. Whole numbers are returned as ints.
func parseNumber(s string) (fragment.Value, bool) {
	if s == "" {
		return fragment.Value{}, false
	}

	if v, ok := parseRadix(s); ok {
		return v, true
	}

	// ParseFloat also accepts "Inf", "NaN" and hex floats; none of them is a
	// configuration number.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "0x") {
		return fragment.Value{}, false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fragment.Int(i), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || strings.Contains(s, "_") {
		return fragment.Value{}, false
	}

	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return fragment.Int(int64(f)), true
	}

	return fragment.Float(f), true
}

func parseRadix(s string) (fragment.Value, bool) {
	digits := s
	sign := ""
	if digits[0] == '+' || digits[0] == '-' {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) < 3 || digits[0] != '0' {
		return fragment.Value{}, false
	}

	var base int
	switch digits[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return fragment.Value{}, false
	}

	i, err := strconv.ParseInt(sign+digits[2:], base, 64)
	if err != nil {
		return fragment.Value{}, false
	}
	return fragment.Int(i), true
}

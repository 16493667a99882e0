// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragment

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// IsEmpty reports whether f has no keys. A nil fragment is empty.
func (f Fragment) IsEmpty() bool {
	return len(f) == 0
}

// Keys returns the keys of f in sorted order.
func (f Fragment) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of f. The copy of a nil fragment is an empty,
// non-nil fragment.
func (f Fragment) Clone() Fragment {
	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports whether f and other hold the same keys and values.
func (f Fragment) Equal(other Fragment) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Map converts f into a plain map[string]any tree, suitable for encoders.
func (f Fragment) Map() map[string]any {
	out := make(map[string]any, len(f))
	for k, v := range f {
		out[k] = v.Interface()
	}
	return out
}

// Lookup returns the value addressed by a dot-separated path.
func (f Fragment) Lookup(path string) (Value, bool) {
	if path == "" {
		return Mapping(f), true
	}

	current := f
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.AsMapping()
		if !ok {
			return Value{}, false
		}
		current = next
	}

	return Value{}, false
}

// FromMap builds a fragment from a decoded map such as the output of
// encoding/json or gopkg.in/yaml.v3.
func FromMap(raw map[string]any) (Fragment, error) {
	out := make(Fragment, len(raw))
	for k, item := range raw {
		v, err := FromAny(item)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// FromAny converts a decoded Go value into a [Value].
//
// Accepted inputs are nil, bool, every integer and float type, string,
// json.Number, time.Time (formatted as RFC 3339), []any, map[string]any and
// map[any]any (keys are formatted with fmt.Sprint).
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v.Clone(), nil
	case Fragment:
		return Mapping(v.Clone()), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return fromUint(v)
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		fv, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q", ErrUnsupportedType, v.String())
		}
		return Float(fv), nil
	case time.Time:
		return String(v.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = iv
		}
		return Sequence(items...), nil
	case map[string]any:
		f, err := FromMap(v)
		if err != nil {
			return Value{}, err
		}
		return Mapping(f), nil
	case map[any]any:
		f := make(Fragment, len(v))
		for k, item := range v {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %v: %w", k, err)
			}
			f[fmt.Sprint(k)] = iv
		}
		return Mapping(f), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
}

// number is satisfied by json.Number.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Float(float64(u)), nil
	}
	return Int(int64(u)), nil
}

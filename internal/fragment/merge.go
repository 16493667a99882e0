// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragment

// DeepMerge merges source onto target and returns target.
//
// A nil target is replaced by a new fragment and a nil source is a no-op.
// Source wins on every conflict: sequences and scalars replace the target
// value, mappings are merged key by key when the target holds a mapping under
// the same key and replace it otherwise. Keys only present in target are kept.
// Inserted values are cloned, so the result never shares nodes with source.
func DeepMerge(target, source Fragment) Fragment {
	if target == nil {
		target = make(Fragment, len(source))
	}

	for key, src := range source {
		switch src.Kind() {
		case KindMapping:
			srcMap, _ := src.AsMapping()
			if dst, ok := target[key].AsMapping(); ok && dst != nil {
				target[key] = Mapping(DeepMerge(dst, srcMap))
				continue
			}
			target[key] = Mapping(DeepMerge(nil, srcMap))
		default:
			target[key] = src.Clone()
		}
	}

	return target
}

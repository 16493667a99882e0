// Package fragment holds the configuration tree model shared by the loader,
// the environment overlay parser and the store.
//
// A [Fragment] maps keys to [Value] nodes. A Value is a tagged variant (null,
// bool, int, float, string, sequence or mapping); code that walks a tree
// switches on [Value.Kind] instead of inspecting dynamic Go types.
//
// [DeepMerge] implements the layer precedence rule: mappings merge
// recursively, sequences and scalars are replaced wholesale.
package fragment

package expconf

import (
	"reflect"
	"sort"
	"strings"
)

// Tree is a nested string-keyed configuration mapping. Values are scalars
// (string, bool, int, float64), []any lists, or nested map[string]any, as
// produced by YAML decoding.
type Tree map[string]any

// Get returns the value at a dotted path like "trainer.max_epochs".
// The second return is false if any segment of the path is missing or
// traverses a non-mapping value.
func (t Tree) Get(path string) (any, bool) {
	segments := strings.Split(path, ".")
	var current any = map[string]any(t)

	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set writes value at a dotted path, creating intermediate mappings as
// needed. A non-mapping value in the middle of the path is replaced by a
// mapping (override wins on type mismatch).
func (t Tree) Set(path string, value any) {
	segments := strings.Split(path, ".")
	current := map[string]any(t)

	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// Delete removes the leaf value at the dotted path and reports whether
// anything was removed. Intermediate mappings stay in place even when
// emptied.
func (t Tree) Delete(path string) bool {
	segments := strings.Split(path, ".")
	current := map[string]any(t)

	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}

	last := segments[len(segments)-1]
	if _, ok := current[last]; !ok {
		return false
	}
	delete(current, last)
	return true
}

// Has reports whether a value exists at the dotted path.
func (t Tree) Has(path string) bool {
	_, ok := t.Get(path)
	return ok
}

// Clone returns a deep copy of the tree. Nested mappings and lists are
// copied; scalar values are shared (they are immutable).
func (t Tree) Clone() Tree {
	return Tree(cloneMap(t))
}

// Equal reports whether two trees hold the same values.
func (t Tree) Equal(other Tree) bool {
	return reflect.DeepEqual(map[string]any(t), map[string]any(other))
}

// Flatten returns the tree as a dotted-path to leaf-value mapping.
// Empty mappings are kept as leaves.
func (t Tree) Flatten() map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", t)
	return out
}

// Paths returns all dotted leaf paths in sorted order.
func (t Tree) Paths() []string {
	flat := t.Flatten()
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func flattenInto(out map[string]any, prefix string, m map[string]any) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flattenInto(out, path, nested)
			continue
		}
		out[path] = v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

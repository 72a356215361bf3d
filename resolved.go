package expconf

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Resolved is the final merged configuration handed to the trainer.
// It is immutable: accessors return copies, never internal state.
type Resolved struct {
	tree Tree
}

func newResolved(m map[string]any) *Resolved {
	return &Resolved{tree: Tree(m)}
}

// Get returns the value at a dotted path.
func (r *Resolved) Get(path string) (any, bool) {
	v, ok := r.tree.Get(path)
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// GetString returns the string value at a dotted path.
func (r *Resolved) GetString(path string) (string, bool) {
	v, ok := r.tree.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt returns the integer value at a dotted path. Whole-number floats
// are accepted, since YAML decoding does not distinguish "4" from "4.0"
// in every producer.
func (r *Resolved) GetInt(path string) (int, bool) {
	v, ok := r.tree.Get(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// GetFloat returns the float value at a dotted path. Integers convert.
func (r *Resolved) GetFloat(path string) (float64, bool) {
	v, ok := r.tree.Get(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// GetBool returns the boolean value at a dotted path.
func (r *Resolved) GetBool(path string) (bool, bool) {
	v, ok := r.tree.Get(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Has reports whether the path exists.
func (r *Resolved) Has(path string) bool {
	return r.tree.Has(path)
}

// AsMap returns a deep copy of the resolved tree.
func (r *Resolved) AsMap() map[string]any {
	return cloneMap(r.tree)
}

// Paths returns all dotted leaf paths in sorted order.
func (r *Resolved) Paths() []string {
	return r.tree.Paths()
}

// YAML renders the resolved configuration as canonical YAML. Map keys are
// emitted in sorted order, so equal configurations render byte-identical.
func (r *Resolved) YAML() ([]byte, error) {
	return yaml.Marshal(map[string]any(r.tree))
}

// JSON renders the resolved configuration as indented JSON.
func (r *Resolved) JSON() ([]byte, error) {
	return json.MarshalIndent(map[string]any(r.tree), "", "  ")
}

// Fingerprint returns a hex-encoded BLAKE2b digest of the canonical YAML
// rendering. Two runs with the same fingerprint used the exact same
// resolved configuration.
func (r *Resolved) Fingerprint() (string, error) {
	data, err := r.YAML()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

package expconf

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	experrors "github.com/randalmurphal/expconf/errors"
)

// Override is one command-line style configuration override, e.g.
// "model.lr=0.0001". The value is parsed as a YAML scalar so numbers and
// booleans keep their types.
type Override struct {
	// Path is the dotted key path.
	Path string

	// Value is the parsed scalar (string, bool, int, float64, or nil).
	Value any
}

// ParseOverride parses a "key=value" override expression. A leading "+"
// (insert-new-key form) is accepted and behaves the same as a plain set.
func ParseOverride(expr string) (Override, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(expr), "+")

	key, raw, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return Override{}, &experrors.ParseError{
			Path: expr,
			Err:  fmt.Errorf("override must have the form key=value"),
		}
	}

	value, err := parseScalar(strings.TrimSpace(raw))
	if err != nil {
		return Override{}, &experrors.ParseError{Path: expr, Err: err}
	}
	return Override{Path: key, Value: value}, nil
}

// ParseOverrides parses a list of override expressions, failing on the
// first malformed entry.
func ParseOverrides(exprs []string) ([]Override, error) {
	out := make([]Override, 0, len(exprs))
	for _, expr := range exprs {
		o, err := ParseOverride(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// parseScalar decodes a single YAML scalar, so "150" becomes an int,
// "0.0001" a float64, "true" a bool, and anything else a string.
func parseScalar(raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}
	return value, nil
}

package expconf

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	experrors "github.com/randalmurphal/expconf/errors"
)

// PackageGlobal is the package marker placing a document's keys at the
// root of the composed tree instead of under its category key.
const PackageGlobal = "_global_"

// packageMarkerPrefix introduces the magic first-line scope marker,
// e.g. "# @package _global_".
const packageMarkerPrefix = "@package"

// selfEntry is the defaults-list entry naming the document's own keys.
// The composer always applies a document's own keys after its defaults,
// so the entry is accepted and ignored.
const selfEntry = "_self_"

// Selection names one defaults-list entry: which base document within a
// category to merge from.
type Selection struct {
	// Category is the configuration section, e.g. "trainer" or "model".
	Category string

	// Name is the document within the category, e.g. "default.yaml".
	Name string

	// Override marks entries written as "override /category: name".
	// An override must replace an existing baseline selection; a plain
	// entry appends a new one.
	Override bool
}

// Document is a parsed configuration document: an optional package scope
// marker, an ordered defaults list, and the remaining keys as a partial
// tree.
type Document struct {
	// Path identifies the document for error reporting.
	Path string

	// Package is the scope marker value ("_global_" or empty).
	Package string

	// Defaults is the ordered list of default selections.
	Defaults []Selection

	// Body holds every key except "defaults".
	Body Tree
}

// IsGlobal reports whether the document's keys merge at the root of the
// composed tree.
func (d *Document) IsGlobal() bool {
	return d.Package == PackageGlobal
}

// ParseDocument parses a configuration document. The path is recorded for
// error reporting only; malformed content yields a *errors.ParseError.
func ParseDocument(path string, data []byte) (*Document, error) {
	doc := &Document{
		Path:    path,
		Package: parsePackageMarker(data),
		Body:    Tree{},
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &experrors.ParseError{Path: path, Err: err}
	}

	for key, value := range raw {
		if key != "defaults" {
			doc.Body[key] = value
		}
	}

	if rawDefaults, ok := raw["defaults"]; ok {
		defaults, err := parseDefaults(path, rawDefaults)
		if err != nil {
			return nil, err
		}
		doc.Defaults = defaults
	}

	return doc, nil
}

// parsePackageMarker extracts the scope from the first non-blank line,
// which must be a comment of the form "# @package <scope>".
func parsePackageMarker(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			return ""
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if !strings.HasPrefix(comment, packageMarkerPrefix) {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(comment, packageMarkerPrefix))
	}
	return ""
}

// parseDefaults decodes the defaults list. Each entry is either the
// "_self_" placeholder or a single-key mapping from category (optionally
// written "override /category") to a document name.
func parseDefaults(path string, raw any) ([]Selection, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, &experrors.ParseError{
			Path: path,
			Err:  fmt.Errorf("defaults must be a list, got %T", raw),
		}
	}

	var selections []Selection
	for i, entry := range list {
		switch e := entry.(type) {
		case string:
			if e == selfEntry {
				continue
			}
			return nil, &experrors.ParseError{
				Path: path,
				Err:  fmt.Errorf("defaults[%d]: unexpected entry %q", i, e),
			}
		case map[string]any:
			if len(e) != 1 {
				return nil, &experrors.ParseError{
					Path: path,
					Err:  fmt.Errorf("defaults[%d]: entry must have exactly one key", i),
				}
			}
			for key, value := range e {
				sel, err := parseSelection(path, i, key, value)
				if err != nil {
					return nil, err
				}
				selections = append(selections, sel)
			}
		default:
			return nil, &experrors.ParseError{
				Path: path,
				Err:  fmt.Errorf("defaults[%d]: unexpected entry type %T", i, entry),
			}
		}
	}
	return selections, nil
}

func parseSelection(path string, index int, key string, value any) (Selection, error) {
	name, ok := value.(string)
	if !ok {
		return Selection{}, &experrors.ParseError{
			Path: path,
			Err:  fmt.Errorf("defaults[%d]: selection for %q must be a string, got %T", index, key, value),
		}
	}

	sel := Selection{Name: name}
	category := strings.TrimSpace(key)
	if rest, found := strings.CutPrefix(category, "override "); found {
		sel.Override = true
		category = strings.TrimSpace(rest)
	}
	category = strings.TrimPrefix(category, "/")
	if category == "" {
		return Selection{}, &experrors.ParseError{
			Path: path,
			Err:  fmt.Errorf("defaults[%d]: empty category name", index),
		}
	}
	sel.Category = category
	return sel, nil
}

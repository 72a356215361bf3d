package errors

import (
	"errors"
	"fmt"
)

// Common composition errors.
var (
	// ErrExperimentRequired indicates no experiment name was given where
	// one is required.
	ErrExperimentRequired = errors.New("experiment name required")

	// ErrNoRootDocument indicates the store has no root config document.
	ErrNoRootDocument = errors.New("no root config document")
)

// MissingDefaultError indicates a default selection references a base
// document that does not exist in its category.
type MissingDefaultError struct {
	Category string
	Name     string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("missing default: no document %q in category %q", e.Name, e.Category)
}

// UnknownCategoryError indicates a selection references a category that is
// not part of the base schema.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Category)
}

// ParseError indicates a configuration document is malformed.
type ParseError struct {
	// Path identifies the document (or override expression) that failed.
	Path string

	// Err is the underlying decode error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

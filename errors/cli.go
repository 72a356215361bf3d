package errors

import (
	"errors"
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to customize suggestions for your CLI.
type ErrorMessenger interface {
	// MissingDefaultMessage returns the message and suggestion when a
	// selected base document does not exist.
	MissingDefaultMessage(category, name string) (message, suggestion string)

	// UnknownCategoryMessage returns the message and suggestion when a
	// selection names a category outside the base schema.
	UnknownCategoryMessage(category string) (message, suggestion string)

	// ParseErrorMessage returns the message and suggestion for a
	// malformed document.
	ParseErrorMessage(path string) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) MissingDefaultMessage(category, name string) (string, string) {
	return fmt.Sprintf("No base document %q in category %q.", name, category),
		fmt.Sprintf("Run 'expconf info %s' to list the available documents.", category)
}

func (m DefaultMessenger) UnknownCategoryMessage(category string) (string, string) {
	return fmt.Sprintf("Category %q is not part of the base configuration.", category),
		"Run 'expconf info' to list the known categories."
}

func (m DefaultMessenger) ParseErrorMessage(path string) (string, string) {
	return fmt.Sprintf("Could not parse %s.", path),
		"Check the document for YAML syntax errors."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapComposeError wraps composition errors with helpful guidance for
// terminal display. Errors outside the taxonomy pass through unchanged.
func WrapComposeError(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)

	var missing *MissingDefaultError
	if errors.As(err, &missing) {
		msg, suggestion := messenger.MissingDefaultMessage(missing.Category, missing.Name)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	var unknown *UnknownCategoryError
	if errors.As(err, &unknown) {
		msg, suggestion := messenger.UnknownCategoryMessage(unknown.Category)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		msg, suggestion := messenger.ParseErrorMessage(parseErr.Path)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    parseErr.Err.Error(),
			Suggestion: suggestion,
		}
	}

	return err
}

// Package errors provides the configuration composition error taxonomy
// with user-friendly CLI messaging.
//
// Core types:
//   - MissingDefaultError: a selected base document does not exist
//   - UnknownCategoryError: a selection names a category outside the base schema
//   - ParseError: a document is malformed
//   - CLIError: wraps errors with message, suggestion, and details
//
// All composition errors are fatal at startup: the caller must not hand a
// partially resolved configuration to a trainer.
//
// Example usage:
//
//	resolved, err := composer.Compose("effinet")
//	if errors.IsMissingDefault(err) {
//	    // The experiment references a base document that does not exist.
//	}
//
//	// Wrap for terminal display with an actionable suggestion
//	return errors.WrapComposeError(err)
package errors

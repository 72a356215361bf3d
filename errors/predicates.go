package errors

import "errors"

// IsMissingDefault checks if an error is a missing default selection.
func IsMissingDefault(err error) bool {
	var target *MissingDefaultError
	return errors.As(err, &target)
}

// IsUnknownCategory checks if an error references a category outside the
// base schema.
func IsUnknownCategory(err error) bool {
	var target *UnknownCategoryError
	return errors.As(err, &target)
}

// IsParseError checks if an error is a malformed-document error.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsFatal checks if an error belongs to the composition taxonomy. Every
// taxonomy error aborts startup; there is no partial-success mode.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return IsMissingDefault(err) || IsUnknownCategory(err) || IsParseError(err) ||
		errors.Is(err, ErrExperimentRequired) || errors.Is(err, ErrNoRootDocument)
}

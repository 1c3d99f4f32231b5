// Package errors classifies the failures reported by the fshelp CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"fshelp/pkg/fshelp"
)

// Error categories for fshelp operations
var (
	ErrNotFound      = fshelp.ErrNotFound
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfiguration = errors.New("configuration error")
)

// ConfigurationError reports a settings key that could not be loaded or applied.
type ConfigurationError struct {
	Key     string // dotted settings key, such as "fs.root"
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	switch {
	case e.Key != "" && e.Value != "":
		fmt.Fprintf(&b, "%s %q: %s", e.Key, e.Value, e.Message)
	case e.Key != "":
		fmt.Fprintf(&b, "%s: %s", e.Key, e.Message)
	default:
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(key, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Key:     key,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError reports a flag or setting holding a value outside its choices.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a validation error for value, which is not among allowed.
func NewValidationError(field, value string, allowed ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Allowed: allowed,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// MultiError collects the failures of a command run over several paths.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("%d errors: %s", len(e.Errors), strings.Join(messages, "; "))
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Join creates a MultiError from multiple errors, filtering out nils.
// A single error is returned as is.
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	switch len(nonNilErrors) {
	case 0:
		return nil
	case 1:
		return nonNilErrors[0]
	default:
		return &MultiError{Errors: nonNilErrors}
	}
}

// IsNotFound checks if an error represents a missing file
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// MissingPaths returns the path of every missing-file error within err.
func MissingPaths(err error) []string {
	var multi *MultiError
	if errors.As(err, &multi) {
		var paths []string
		for _, inner := range multi.Errors {
			paths = append(paths, MissingPaths(inner)...)
		}
		return paths
	}

	var notFound *fshelp.NotFoundError
	if errors.As(err, &notFound) {
		return []string{notFound.Path}
	}
	return nil
}

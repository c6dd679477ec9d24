// Package errors provides the error types that abort a compliance run.
// Compliance violations are not errors and never appear here.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
)

var (
	// ErrNilPolicy is returned when no policy structure was supplied.
	ErrNilPolicy = stdErrors.New("policy is required")

	// ErrMissingName is returned for a package without an identifying name.
	ErrMissingName = stdErrors.New("package name is required")

	// ErrUnknownField is returned when a policy names a field packages do not have.
	ErrUnknownField = stdErrors.New("unknown package field")

	// ErrEmptyEntry is returned for an empty string inside a policy list.
	ErrEmptyEntry = stdErrors.New("empty entry")
)

// DetailedError is implemented by errors that convert themselves to a
// structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to a structured ErrorDetail.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// ConfigError represents a malformed policy configuration.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid policy configuration for '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid policy configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// InputError represents a malformed package list or policy structure.
// Index is the offending package position, or -1 when the error concerns
// the policy itself.
type InputError struct {
	Err   error
	Field string
	Index int
}

func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed package at index %d (field '%s'): %v", e.Index, e.Field, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("malformed input (field '%s'): %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *InputError) ToErrorDetail() *entities.ErrorDetail {
	detail := &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: e.Field}
	if e.Index >= 0 {
		detail.Details = map[string]any{"index": e.Index}
	}
	return detail
}

// HandlerError represents a policy handler that could not finish its traversal.
type HandlerError struct {
	Err      error
	Category entities.Category
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s check failed: %v", e.Category, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError. A handler failure caused by a
// configuration or input problem keeps that classification.
func (e *HandlerError) ToErrorDetail() *entities.ErrorDetail {
	var de DetailedError
	if stdErrors.As(e.Err, &de) {
		detail := de.ToErrorDetail()
		detail.Message = e.Error()
		return detail
	}
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: string(e.Category)}
}

// SchemaError represents a schema generation failure.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "schema"}
}

// IsProcessingError reports whether err aborted a run because of bad
// configuration or input, as opposed to an internal failure.
func IsProcessingError(err error) bool {
	var ce *ConfigError
	var ie *InputError
	return stdErrors.As(err, &ce) || stdErrors.As(err, &ie)
}

// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates a malformed or out-of-range activity record
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeNoFactor indicates factor resolution exhausted every fallback
	TypeNoFactor Type = "NO_MATCHING_FACTOR"

	// TypeUnitConversion indicates a dimensional mismatch or unknown unit
	TypeUnitConversion Type = "UNIT_CONVERSION_ERROR"

	// TypeUnknownGas indicates a gas missing from the selected GWP table
	TypeUnknownGas Type = "UNKNOWN_GAS"

	// TypeFactorLoad indicates a factor source file failed to load
	TypeFactorLoad Type = "FACTOR_LOAD_ERROR"

	// TypeNotSupported indicates an unsupported operation
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// TypeOf returns the domain error type, or TypeInternal for foreign errors
func TypeOf(err error) Type {
	if e, ok := err.(*Error); ok {
		return e.Type
	}
	return TypeInternal
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...interface{}) *Error {
	return Newf(TypeValidation, format, args...)
}

// NoFactor creates a no-matching-factor error
func NoFactor(format string, args ...interface{}) *Error {
	return Newf(TypeNoFactor, format, args...)
}

// UnitConversion creates a unit conversion error
func UnitConversion(message string, cause error) *Error {
	return Wrap(TypeUnitConversion, message, cause)
}

// UnknownGas creates an unknown gas error
func UnknownGas(gas, assessment string) *Error {
	return Newf(TypeUnknownGas, "unknown gas %q for assessment %s", gas, assessment)
}

// FactorLoad creates a factor load error
func FactorLoad(message string, cause error) *Error {
	return Wrap(TypeFactorLoad, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

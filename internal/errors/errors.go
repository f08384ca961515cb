package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error in the extraction taxonomy.
type ErrorType string

const (
	ErrTypeExtraction ErrorType = "EXTRACTION" // collaborator yielded no tables/text
	ErrTypeParsing    ErrorType = "PARSING"    // line did not match its expected role
	ErrTypeCoercion   ErrorType = "COERCION"   // cell failed numeric coercion
	ErrTypeValidation ErrorType = "VALIDATION" // record failed field validation
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeStorage    ErrorType = "STORAGE"
)

// Sentinel errors for whole-run outcomes. Extraction and parsing problems
// inside a run are logged and skipped; only these abort a pipeline.
var (
	// ErrNothingExtracted is returned when a document produced zero rows.
	// No output file is written in that case.
	ErrNothingExtracted = errors.New("nothing extracted from document")

	// ErrSourceUnreadable is returned when the source PDF cannot be
	// opened or read at all.
	ErrSourceUnreadable = errors.New("source document unreadable")
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewExtractionError creates an extraction-related error
func NewExtractionError(message string, cause error) *AppError {
	return NewAppError(ErrTypeExtraction, message, cause)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewCoercionError creates a type-coercion error
func NewCoercionError(message string, cause error) *AppError {
	return NewAppError(ErrTypeCoercion, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

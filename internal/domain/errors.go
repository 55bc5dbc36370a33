package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Dataset and media errors
	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	CodeMediaNotFound    ErrorCode = "MEDIA_NOT_FOUND"
	CodeLoadFailure      ErrorCode = "LOAD_FAILURE"
	CodeConversionFailed ErrorCode = "CONVERSION_FAILED"
	CodeStorageError     ErrorCode = "STORAGE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that is echoed to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewQuestionNotFoundError(taskID int) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("Question not found with task_id: %d", taskID), nil).
		WithContext("task_id", taskID)
}

// NewUnknownTaskIDError reports a task_id that is a well-formed integer too
// large to be held in an int, so no row can carry it.
func NewUnknownTaskIDError(raw string) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("Question not found with task_id: %s", raw), nil).
		WithContext("task_id", raw)
}

func NewMediaNotFoundError(path string) *DomainError {
	return NewError(CodeMediaNotFound, "File not found", nil).WithContext("path", path)
}

func NewLoadFailureError(source string, err error) *DomainError {
	return NewError(CodeLoadFailure, fmt.Sprintf("Failed to load dataset from %s", source), err)
}

func NewConversionFailedError(path string, err error) *DomainError {
	return NewError(CodeConversionFailed, "TIFF conversion failed", err).WithContext("path", path)
}

func NewStorageError(path string, err error) *DomainError {
	return NewError(CodeStorageError, "Failed to fetch media from object storage", err).WithContext("path", path)
}

// ValidationError describes a single rejected request parameter.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is returned by request validation and rendered as a 400.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, ve := range e {
		messages = append(messages, ve.Message)
	}
	return strings.Join(messages, "; ")
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UploadError represents a rejected screenshot upload
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

var (
	ErrProjectNotFound = &NotFoundError{Entity: "project"}

	// Upload rejections, raised before anything touches storage
	ErrUnsupportedFileType = &UploadError{Message: "only image files are allowed"}
	ErrFileTooLarge        = &UploadError{Message: "uploaded file exceeds the size limit"}

	ErrEmptySearchQuery = errors.New("search query is required")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpload checks if an error is an UploadError
func IsUpload(err error) bool {
	var uploadErr *UploadError
	return errors.As(err, &uploadErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

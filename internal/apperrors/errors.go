package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoApprovedItems indicates that a session has no QC-approved items to work with.
var ErrNoApprovedItems = errors.New("no approved items found")

// ErrNoLabelsGenerated indicates that label generation produced zero labels.
var ErrNoLabelsGenerated = errors.New("no labels could be generated")

// ErrERPRejected indicates that the ERP service layer rejected a request.
var ErrERPRejected = errors.New("erp request rejected")

// AppError wraps a lower-level error with an HTTP-style code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError constructs an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

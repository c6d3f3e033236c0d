package apperror

import "fmt"

type AppError struct {
	Code    string              // Error code (e.g., INVALID_INPUT)
	Message string              // User-friendly message
	Status  int                 // HTTP status reported by the backend, 0 when the request never completed
	Errors  map[string][]string // Field-level errors as returned by the backend
	Err     error               // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, status int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WithErrors mengembalikan salinan error dengan detail per-field dari backend
func (e *AppError) WithErrors(errs map[string][]string) *AppError {
	clone := *e
	clone.Errors = errs
	return &clone
}

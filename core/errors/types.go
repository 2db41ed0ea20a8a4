// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors that the API layer maps to HTTP status codes

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a missing or malformed request field
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError means a webpage could not be retrieved or parsed.
// StatusCode is zero when no HTTP response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("Failed to fetch webpage: %s returned status %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("Failed to fetch webpage: %v", e.Err)
	default:
		return "Failed to fetch webpage: " + e.URL
	}
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error { return e.Err }

// GenerationError means the text-generation capability failed or returned
// output that is not the expected structure
type GenerationError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *GenerationError) Unwrap() error { return e.Err }

// AuthError means the social network login failed or no credentials are configured
type AuthError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *AuthError) Unwrap() error { return e.Err }

// PublishError means post creation failed for an authenticated session
type PublishError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *PublishError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *PublishError) Unwrap() error { return e.Err }

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

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsPublish checks if an error is a PublishError
func IsPublish(err error) bool {
	var publishErr *PublishError
	return errors.As(err, &publishErr)
}

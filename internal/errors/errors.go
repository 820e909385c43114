// Package errors provides a lightweight structured error type (SiteError)
// for category-based classification across the site model and render pipeline.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a sitetree error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"

	// Source and output tree I/O errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Template resolution and execution errors
	CategoryTemplate ErrorCategory = "template"

	// Rendering pipeline errors
	CategoryRender ErrorCategory = "render"

	// Caller misuse, e.g. requesting rendered HTML from a non-markdown document
	CategoryUnsupported ErrorCategory = "unsupported"

	// Anything that escaped classification
	CategoryInternal ErrorCategory = "internal"
)

// SiteError is a structured error with category and context
type SiteError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SiteError
type ContextFields map[string]any

// Error implements the error interface
func (e *SiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SiteError) WithContext(key string, value any) *SiteError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SiteError
func New(category ErrorCategory, message string) *SiteError {
	return &SiteError{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new SiteError that wraps an existing error
func Wrap(err error, category ErrorCategory, message string) *SiteError {
	return &SiteError{
		Category: category,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal
// if no SiteError is found in the chain
func GetCategory(err error) ErrorCategory {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Category
	}
	return CategoryInternal
}

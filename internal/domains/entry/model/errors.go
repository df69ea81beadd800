package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound       = "ENT001"
	ErrCodeValidation     = "ENT002"
	ErrCodeSchemaNotReady = "ENT003"
	ErrCodeConnectivity   = "ENT004"
	ErrCodeConfiguration  = "ENT005"
	ErrCodeCreateFailed   = "ENT006"
	ErrCodeListFailed     = "ENT007"
	ErrCodeDeleteFailed   = "ENT008"
)

// Errors
var (
	ErrNotFound       = errors.New("entry not found")
	ErrValidation     = errors.New("invalid entry")
	ErrSchemaNotReady = errors.New("timeline_entries table does not exist")
	ErrConnectivity   = errors.New("entry store unreachable")
	ErrConfiguration  = errors.New("entry store not configured")
)

// EntryError custom error type
type EntryError struct {
	Code    string
	Message string
	Err     error
}

func (e *EntryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewValidationError(err error) *EntryError {
	return &EntryError{
		Code:    ErrCodeValidation,
		Message: err.Error(),
		Err:     ErrValidation,
	}
}

func NewCreateFailedError(err error) *EntryError {
	return newStoreError(err, ErrCodeCreateFailed, "Failed to create entry")
}

func NewListFailedError(err error) *EntryError {
	return newStoreError(err, ErrCodeListFailed, "Failed to fetch entries. Check database connection.")
}

func NewDeleteFailedError(err error) *EntryError {
	return newStoreError(err, ErrCodeDeleteFailed, "Failed to delete entry")
}

// newStoreError keeps the store failure kind visible to machine clients.
// Configuration gets its own message, the rest stay generic.
func newStoreError(err error, code, message string) *EntryError {
	switch {
	case errors.Is(err, ErrConfiguration):
		code = ErrCodeConfiguration
		message = "Database not configured. Please set DATABASE_URL environment variable."
	case errors.Is(err, ErrConnectivity):
		code = ErrCodeConnectivity
	case errors.Is(err, ErrSchemaNotReady):
		code = ErrCodeSchemaNotReady
	}

	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a client-layer failure.
type ErrorKind string

const (
	// KindValidation marks a missing or malformed local argument. The
	// request never reached the network.
	KindValidation ErrorKind = "validation"
	// KindAuth marks a rejected login attempt.
	KindAuth ErrorKind = "auth"
	// KindUnauthorized marks a 401/403 on an authenticated call. The
	// transport reports it and does nothing else; logging out is the
	// caller's decision.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindNotFound marks a 404.
	KindNotFound ErrorKind = "not_found"
	// KindServer marks a 5xx or a malformed payload.
	KindServer ErrorKind = "server"
	// KindNetwork marks a transport failure before any response arrived.
	KindNetwork ErrorKind = "network"
)

// Kind sentinels for errors.Is matching.
var (
	ErrValidation   = errors.New("validation failed")
	ErrAuth         = errors.New("login rejected")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the normalized form of every failure surfaced by the client
// layer. Status is zero for errors that never involved an HTTP response.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  []FieldError
	cause   error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s [%d]: %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap resolves to the kind sentinel, and through it to any wrapped
// transport error.
func (e *APIError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.sentinel()
}

// Is matches the kind sentinel regardless of a wrapped cause.
func (e *APIError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *APIError) sentinel() error {
	switch e.Kind {
	case KindValidation:
		return ErrValidation
	case KindAuth:
		return ErrAuth
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrServer
	}
}

// Error constructors

func NewValidationError(fields []FieldError) *APIError {
	msg := "one or more fields failed validation"
	if len(fields) > 0 {
		msg = fmt.Sprintf("%s: %s", fields[0].Field, fields[0].Message)
		if len(fields) > 1 {
			msg = fmt.Sprintf("%s (and %d more errors)", msg, len(fields)-1)
		}
	}
	return &APIError{Kind: KindValidation, Message: msg, Fields: fields}
}

// NewMissingArgError reports a single empty required identifier.
func NewMissingArgError(field string) *APIError {
	return NewValidationError([]FieldError{{Field: field, Message: field + " is required"}})
}

func NewAuthError(message string) *APIError {
	if message == "" {
		message = "invalid email or password"
	}
	return &APIError{Kind: KindAuth, Status: 401, Message: message}
}

func NewUnauthorizedError(status int, message string) *APIError {
	if message == "" {
		message = "session invalid or expired"
	}
	return &APIError{Kind: KindUnauthorized, Status: status, Message: message}
}

func NewNotFoundError(message string) *APIError {
	if message == "" {
		message = "resource not found"
	}
	return &APIError{Kind: KindNotFound, Status: 404, Message: message}
}

func NewServerError(status int, message string) *APIError {
	if message == "" {
		message = "an unexpected error occurred"
	}
	return &APIError{Kind: KindServer, Status: status, Message: message}
}

func NewNetworkError(cause error) *APIError {
	return &APIError{Kind: KindNetwork, Message: cause.Error(), cause: cause}
}

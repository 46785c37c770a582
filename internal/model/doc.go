// Package model defines the domain entities and data structures shared by
// the Sahyog client layer.
//
// Every entity here is a short-lived, non-authoritative copy of a backend
// resource: fetched, displayed, optionally re-fetched. Nothing in this
// package has a lifecycle independent of its backend counterpart.
//
// # Domain Entities
//
//   - Actor: the authenticated identity behind a session (user, org, admin)
//   - Event: a community event hosted by an org
//   - Org: an organization profile with a verification flag
//   - Donation / PaymentOrder: contribution records, amounts in paise
//   - Notification, Review, Conversation, Message, CollabRequest
//
// # Validation
//
// Request structs carry a Validate() []FieldError method. Validation runs
// locally before any network call; a non-empty result never reaches the
// wire.
//
// # Error Types
//
// The client error taxonomy lives in errors.go:
//
//	type APIError struct {
//	    Kind    ErrorKind
//	    Status  int
//	    Message string
//	}
//
// APIError values unwrap to one of the kind sentinels (ErrUnauthorized,
// ErrNotFound, ...) so callers branch with errors.Is.
package model

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ActorKind discriminates the tagged union of authenticated identities.
type ActorKind string

const (
	ActorUser  ActorKind = "user"
	ActorOrg   ActorKind = "org"
	ActorAdmin ActorKind = "admin"
)

// Actor represents the authenticated identity behind a session. The kind
// field is the union tag; kind-specific fields are nil for other kinds.
// An Actor is always derived by resolving the session token against the
// backend and is never mutated locally.
type Actor struct {
	ID    string    `json:"id"`
	Kind  ActorKind `json:"type"`
	Name  string    `json:"name"`
	Email string    `json:"email"`

	// Org-only fields
	Verified    *bool   `json:"verified,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`

	// User-only fields
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`

	CreatedOn time.Time `json:"created_on"`
}

// Valid reports whether the union tag is one of the three known kinds.
func (a *Actor) Valid() bool {
	switch a.Kind {
	case ActorUser, ActorOrg, ActorAdmin:
		return true
	}
	return false
}

// IsVerifiedOrg returns true for an org actor whose documents have been
// approved by an admin.
func (a *Actor) IsVerifiedOrg() bool {
	return a.Kind == ActorOrg && a.Verified != nil && *a.Verified
}

// HomePath returns the role's home screen, the target of authorization
// redirects.
func (a *Actor) HomePath() string {
	switch a.Kind {
	case ActorUser:
		return "/user/home"
	case ActorOrg:
		return "/org/home"
	case ActorAdmin:
		return "/admin/home"
	default:
		return "/login"
	}
}

// UnmarshalJSON rejects payloads with an unknown or missing union tag so a
// misshapen backend response cannot produce a kind-less actor.
func (a *Actor) UnmarshalJSON(data []byte) error {
	type alias Actor
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Actor(raw)
	if !out.Valid() {
		return fmt.Errorf("unknown actor type %q", raw.Kind)
	}
	*a = out
	return nil
}

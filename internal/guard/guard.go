// Package guard gates role-restricted views. Before a protected screen
// runs, the guard resolves the current actor through the auth client and
// yields a navigation decision: render, or redirect. Nothing is rendered
// while resolution is pending, so unauthorized content can never flash.
package guard

import (
	"context"

	"github.com/sahyog-app/sahyog/internal/model"
)

// Redirect targets.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// AuthClient resolves the current session to an actor. A nil actor with a
// nil error means anonymous.
type AuthClient interface {
	Verify(ctx context.Context) (*model.Actor, error)
}

// Rule describes the access requirement of one view.
type Rule struct {
	// RequireAuth demands a resolved actor. False means the view is
	// public and the guard always allows.
	RequireAuth bool

	// Roles is the allow-list. Empty with RequireAuth set means any
	// authenticated role.
	Roles []model.ActorKind

	// RedirectToDashboard forces org actors away from this view toward
	// the org dashboard. Evaluated before the allow-list.
	RedirectToDashboard bool
}

// Public allows everyone.
func Public() Rule {
	return Rule{}
}

// Authenticated allows any signed-in actor.
func Authenticated() Rule {
	return Rule{RequireAuth: true}
}

// RolesOnly allows only the listed actor kinds.
func RolesOnly(kinds ...model.ActorKind) Rule {
	return Rule{RequireAuth: true, Roles: kinds}
}

// Decision is the outcome of a guard check. RedirectPath is empty iff
// Allow is true. Actor is the resolved identity, nil for anonymous.
type Decision struct {
	Allow        bool
	RedirectPath string
	Actor        *model.Actor
}

// Guard performs access checks through an auth client.
type Guard struct {
	auth AuthClient
}

// New creates a guard.
func New(auth AuthClient) *Guard {
	return &Guard{auth: auth}
}

// Check resolves the actor and applies the rule. Only transport-level
// failures return an error; every authorization outcome is a Decision.
func (g *Guard) Check(ctx context.Context, rule Rule) (Decision, error) {
	if !rule.RequireAuth && !rule.RedirectToDashboard {
		actor, err := g.auth.Verify(ctx)
		if err != nil {
			return Decision{}, err
		}
		return Decision{Allow: true, Actor: actor}, nil
	}

	actor, err := g.auth.Verify(ctx)
	if err != nil {
		return Decision{}, err
	}
	if actor == nil {
		// No token, or an expired/invalid one. Either way: login.
		return Decision{RedirectPath: LoginPath}, nil
	}

	// The dashboard override outranks the generic allow-list.
	if rule.RedirectToDashboard && actor.Kind == model.ActorOrg {
		return Decision{RedirectPath: DashboardPath, Actor: actor}, nil
	}

	if len(rule.Roles) == 0 {
		return Decision{Allow: true, Actor: actor}, nil
	}

	for _, kind := range rule.Roles {
		if actor.Kind == kind {
			return Decision{Allow: true, Actor: actor}, nil
		}
	}
	return Decision{RedirectPath: actor.HomePath(), Actor: actor}, nil
}

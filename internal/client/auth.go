package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/sahyog-app/sahyog/internal/model"
)

// Credentials carries a login submission.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates login credentials.
func (c *Credentials) Validate() []model.FieldError {
	var errs []model.FieldError
	if c.Email == "" {
		errs = append(errs, model.FieldError{Field: "email", Message: "email is required"})
	}
	if c.Password == "" {
		errs = append(errs, model.FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

// loginResponse is the backend login payload.
type loginResponse struct {
	Token string       `json:"token"`
	User  *model.Actor `json:"user"`
}

// verifyResponse is the backend verify payload. User is null for an
// invalid or expired token.
type verifyResponse struct {
	User *model.Actor `json:"user"`
}

// Login submits credentials, stores the returned token on success, and
// returns the normalized actor. A rejected login surfaces as an auth
// error and is never retried.
func (c *Client) Login(ctx context.Context, creds Credentials) (*model.Actor, error) {
	if errs := creds.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	var resp loginResponse
	err := c.postJSON(ctx, "/api/login", creds, false, &resp)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest) {
			return nil, model.NewAuthError(apiErr.Message)
		}
		return nil, err
	}

	if resp.Token == "" || resp.User == nil {
		return nil, model.NewServerError(http.StatusOK, "login response missing token or user")
	}

	if err := c.store.Set(resp.Token); err != nil {
		return nil, model.NewNetworkError(err)
	}
	return resp.User, nil
}

// Verify resolves the current session token to an actor. With no stored
// token it returns (nil, nil) without any network I/O. An invalid or
// expired token also resolves to (nil, nil): an anonymous visitor is an
// expected state, not an error.
func (c *Client) Verify(ctx context.Context) (*model.Actor, error) {
	token, err := c.store.Get()
	if err != nil {
		return nil, model.NewNetworkError(err)
	}
	if token == "" {
		return nil, nil
	}

	var resp verifyResponse
	err = c.getJSON(ctx, "/api/verify", nil, true, &resp)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return resp.User, nil
}

// Logout clears the token store. There is no server-side session to
// revoke; invalidation is purely client-side.
func (c *Client) Logout() error {
	return c.store.Clear()
}

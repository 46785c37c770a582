package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sahyog-app/sahyog/internal/model"
	"github.com/sahyog-app/sahyog/internal/obs"
	"github.com/sahyog-app/sahyog/internal/session"
)

// Client is the Sahyog API client. It owns no state besides its
// configuration and the injected session store; in particular it never
// caches the bearer token across calls.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   session.Store
	limiter *rate.Limiter
	metrics *obs.ClientMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithRateLimit throttles outgoing requests client-side. Useful for the
// suggest endpoint, which fires on keystrokes.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithMetrics attaches prometheus instrumentation to the transport.
func WithMetrics(m *obs.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client against the given base URL with the injected
// session store.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		store:   store,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// call performs one HTTP request and decodes the JSON response into out
// (which may be nil for endpoints with no interesting body). When authed
// is true the bearer token is read from the store immediately before
// dispatch; an empty store rejects the call locally so a cleared session
// can never leak a stale credential onto the wire.
func (c *Client) call(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string, authed bool, out any) error {
	var token string
	if authed {
		t, err := c.store.Get()
		if err != nil {
			return model.NewNetworkError(fmt.Errorf("session store: %w", err))
		}
		if t == "" {
			return model.NewUnauthorizedError(0, "no active session")
		}
		token = t
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return model.NewNetworkError(err)
		}
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return model.NewNetworkError(err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method != http.MethodGet && method != http.MethodHead {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	done := c.metrics.Begin(method, path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		done("network")
		return model.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()
	done(strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeHTTPError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return model.NewServerError(resp.StatusCode, "malformed response payload")
		}
	}
	return nil
}

// normalizeHTTPError maps a non-2xx response onto the error taxonomy,
// preserving the server-provided message when one is present.
func normalizeHTTPError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	msg := ""
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Error != "" {
			msg = env.Error
		} else if env.Message != "" {
			msg = env.Message
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return model.NewUnauthorizedError(resp.StatusCode, msg)
	case resp.StatusCode == http.StatusNotFound:
		return model.NewNotFoundError(msg)
	default:
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return model.NewServerError(resp.StatusCode, msg)
	}
}

// JSON helpers

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, authed bool, out any) error {
	return c.call(ctx, http.MethodGet, path, q, nil, "", authed, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in any, authed bool, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodPost, path, nil, body, "application/json", authed, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, in any, authed bool, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodPatch, path, nil, body, "application/json", authed, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, "", true, out)
}

func encodeJSON(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{{Field: "body", Message: err.Error()}})
	}
	return bytes.NewReader(data), nil
}

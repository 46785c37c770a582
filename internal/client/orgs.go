package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// ListOrgs fetches organizations, optionally filtered by city.
func (c *Client) ListOrgs(ctx context.Context, city string, opts model.ListOptions) ([]model.Org, error) {
	q := listQuery(opts)
	setOpt(q, "city", city)

	var orgs []model.Org
	if err := c.getJSON(ctx, "/api/orgs", q, false, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetOrg fetches a single org profile.
func (c *Client) GetOrg(ctx context.Context, orgID string) (*model.Org, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var org model.Org
	if err := c.getJSON(ctx, "/api/orgs/"+url.PathEscape(orgID), nil, false, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// GetOrgDashboard fetches the current org actor's dashboard aggregate.
func (c *Client) GetOrgDashboard(ctx context.Context) (*model.OrgDashboard, error) {
	var dash model.OrgDashboard
	if err := c.getJSON(ctx, "/api/orgs/dashboard", nil, true, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// UpdateProfile submits partial profile changes for the current actor.
// The payload is multipart because of the optional avatar.
func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.Actor, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	m := newMultipartBody()
	if req.Name != nil {
		m.field("name", *req.Name)
	}
	if req.Phone != nil {
		m.field("phone", *req.Phone)
	}
	if req.Location != nil {
		m.field("location", *req.Location)
	}
	if req.Website != nil {
		m.field("website", *req.Website)
	}
	m.file("avatar", req.AvatarName, req.Avatar)

	body, contentType, err := m.finish()
	if err != nil {
		return nil, err
	}

	var actor model.Actor
	if err := c.call(ctx, "PUT", "/api/users/profile", nil, body, contentType, true, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

// GetUser fetches a public user profile.
func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, model.NewMissingArgError("userId")
	}

	var user model.User
	if err := c.getJSON(ctx, "/api/users/"+url.PathEscape(userID), nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// followRequest is the body for follow/unfollow calls.
type followRequest struct {
	OrgID string `json:"org_id"`
}

// followStatus is the doIFollow response shape.
type followStatus struct {
	Following bool `json:"following"`
}

// DoIFollow reports whether the current user follows the org.
func (c *Client) DoIFollow(ctx context.Context, orgID string) (bool, error) {
	if orgID == "" {
		return false, model.NewMissingArgError("orgId")
	}

	var status followStatus
	if err := c.getJSON(ctx, "/api/follow/doIFollow/"+url.PathEscape(orgID), nil, true, &status); err != nil {
		return false, err
	}
	return status.Following, nil
}

// FollowOrg subscribes the current user to the org's updates. Following
// an already-followed org is accepted by the backend as a no-op.
func (c *Client) FollowOrg(ctx context.Context, orgID string) error {
	if orgID == "" {
		return model.NewMissingArgError("orgId")
	}
	return c.postJSON(ctx, "/api/follow", followRequest{OrgID: orgID}, true, nil)
}

// UnfollowOrg removes the current user's follow.
func (c *Client) UnfollowOrg(ctx context.Context, orgID string) error {
	if orgID == "" {
		return model.NewMissingArgError("orgId")
	}
	return c.postJSON(ctx, "/api/unfollow", followRequest{OrgID: orgID}, true, nil)
}

// ListFollowedOrgs fetches the orgs the current user follows.
func (c *Client) ListFollowedOrgs(ctx context.Context, opts model.ListOptions) ([]model.Org, error) {
	var orgs []model.Org
	if err := c.getJSON(ctx, "/api/follow/orgs", listQuery(opts), true, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

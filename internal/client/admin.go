package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// ListUnverifiedOrgs fetches orgs awaiting verification. Admin only.
func (c *Client) ListUnverifiedOrgs(ctx context.Context, opts model.ListOptions) ([]model.Org, error) {
	var orgs []model.Org
	if err := c.getJSON(ctx, "/api/admin/orgs/unverified", listQuery(opts), true, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListOrgDocs fetches the verification documents an org submitted. Admin
// only.
func (c *Client) ListOrgDocs(ctx context.Context, orgID string) ([]model.OrgDoc, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var docs []model.OrgDoc
	if err := c.getJSON(ctx, "/api/admin/orgs/"+url.PathEscape(orgID)+"/docs", nil, true, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// VerifyOrg approves or revokes an org's verified status. Admin only.
func (c *Client) VerifyOrg(ctx context.Context, orgID string, verified bool) (*model.Org, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var org model.Org
	body := map[string]bool{"verified": verified}
	if err := c.patchJSON(ctx, "/api/admin/orgs/"+url.PathEscape(orgID)+"/verify", body, true, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

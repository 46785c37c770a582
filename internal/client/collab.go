package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// CreateCollabRequest proposes an event collaboration to another org.
func (c *Client) CreateCollabRequest(ctx context.Context, req model.CreateCollabRequest) (*model.CollabRequest, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	body := map[string]string{
		"event_id":  req.EventID,
		"to_org_id": req.ToOrgID,
	}
	if req.Note != "" {
		body["note"] = req.Note
	}

	var collab model.CollabRequest
	if err := c.postJSON(ctx, "/api/collab", body, true, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// ListCollabRequests fetches the collaboration requests addressed to the
// current org actor.
func (c *Client) ListCollabRequests(ctx context.Context, opts model.ListOptions) ([]model.CollabRequest, error) {
	var collabs []model.CollabRequest
	if err := c.getJSON(ctx, "/api/collab", listQuery(opts), true, &collabs); err != nil {
		return nil, err
	}
	return collabs, nil
}

// RespondCollabRequest accepts or rejects a pending collaboration
// request.
func (c *Client) RespondCollabRequest(ctx context.Context, requestID string, accept bool) (*model.CollabRequest, error) {
	if requestID == "" {
		return nil, model.NewMissingArgError("requestId")
	}

	action := "reject"
	if accept {
		action = "accept"
	}

	var collab model.CollabRequest
	if err := c.patchJSON(ctx, "/api/collab/"+url.PathEscape(requestID)+"/"+action, nil, true, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

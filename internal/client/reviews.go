package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// CreateReview submits a star review of an org.
func (c *Client) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	body := map[string]any{
		"org_id": req.OrgID,
		"stars":  req.Stars,
	}
	if req.Comment != "" {
		body["comment"] = req.Comment
	}
	if req.EventID != "" {
		body["event_id"] = req.EventID
	}

	var review model.Review
	if err := c.postJSON(ctx, "/api/reviews", body, true, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListOrgReviews fetches the reviews left on an org.
func (c *Client) ListOrgReviews(ctx context.Context, orgID string, opts model.ListOptions) ([]model.Review, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var reviews []model.Review
	if err := c.getJSON(ctx, "/api/reviews/org/"+url.PathEscape(orgID), listQuery(opts), false, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetOrgRating fetches an org's aggregate rating.
func (c *Client) GetOrgRating(ctx context.Context, orgID string) (*model.RatingSummary, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var summary model.RatingSummary
	if err := c.getJSON(ctx, "/api/reviews/org/"+url.PathEscape(orgID)+"/summary", nil, false, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// DeleteReview removes the current user's review.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		return model.NewMissingArgError("reviewId")
	}
	return c.delete(ctx, "/api/reviews/"+url.PathEscape(reviewID), nil)
}

package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// donationBody is the wire shape of a donation submission. The amount is
// always in paise.
type donationBody struct {
	EventID     string `json:"event_id"`
	AmountPaise int64  `json:"amount"`
	Note        string `json:"note,omitempty"`
	Anonymous   bool   `json:"anonymous"`
}

// CreateDonation records a donation against an event. The rupee input is
// converted to paise exactly before transmission.
func (c *Client) CreateDonation(ctx context.Context, req model.CreateDonationRequest) (*model.Donation, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	paise, err := model.PaiseFromRupees(req.AmountRupees)
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{{Field: "amount", Message: err.Error()}})
	}

	var donation model.Donation
	body := donationBody{EventID: req.EventID, AmountPaise: paise, Note: req.Note, Anonymous: req.Anonymous}
	if err := c.postJSON(ctx, "/api/donation", body, true, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListEventDonations fetches the donations made to an event.
func (c *Client) ListEventDonations(ctx context.Context, eventID string, opts model.ListOptions) ([]model.Donation, error) {
	if eventID == "" {
		return nil, model.NewMissingArgError("eventId")
	}

	var donations []model.Donation
	if err := c.getJSON(ctx, "/api/donation/"+url.PathEscape(eventID), listQuery(opts), true, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// ListUserDonations fetches a user's donation history.
func (c *Client) ListUserDonations(ctx context.Context, userID string, opts model.ListOptions) ([]model.Donation, error) {
	if userID == "" {
		return nil, model.NewMissingArgError("userId")
	}

	var donations []model.Donation
	if err := c.getJSON(ctx, "/api/donation/user/"+url.PathEscape(userID), listQuery(opts), true, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

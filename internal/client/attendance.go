package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// attendStatus is the isMeAttending response shape.
type attendStatus struct {
	Attending bool `json:"attending"`
}

// Attend marks the current user as attending the event.
func (c *Client) Attend(ctx context.Context, eventID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	return c.postJSON(ctx, "/api/attendance/attend/"+url.PathEscape(eventID), nil, true, nil)
}

// Unattend removes the current user's attendance.
func (c *Client) Unattend(ctx context.Context, eventID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	return c.postJSON(ctx, "/api/attendance/unattend/"+url.PathEscape(eventID), nil, true, nil)
}

// IsMeAttending reports whether the current user attends the event.
func (c *Client) IsMeAttending(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, model.NewMissingArgError("eventId")
	}

	var status attendStatus
	if err := c.getJSON(ctx, "/api/attendance/isMeAttending/"+url.PathEscape(eventID), nil, true, &status); err != nil {
		return false, err
	}
	return status.Attending, nil
}

// ListAttendees fetches the attendees of an event, as the hosting org.
func (c *Client) ListAttendees(ctx context.Context, eventID string, opts model.ListOptions) ([]model.User, error) {
	if eventID == "" {
		return nil, model.NewMissingArgError("eventId")
	}

	var users []model.User
	if err := c.getJSON(ctx, "/api/attendance/event/"+url.PathEscape(eventID), listQuery(opts), true, &users); err != nil {
		return nil, err
	}
	return users, nil
}

package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// volunteerStatus is the isMeVolunteering response shape.
type volunteerStatus struct {
	Volunteering bool    `json:"volunteering"`
	Status       *string `json:"status,omitempty"`
}

// Volunteer applies the current user as a volunteer for the event. The
// application starts in pending state until the org approves it.
func (c *Client) Volunteer(ctx context.Context, eventID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	return c.postJSON(ctx, "/api/volunteer/volunteer/"+url.PathEscape(eventID), nil, true, nil)
}

// Unvolunteer withdraws the current user's volunteer application.
func (c *Client) Unvolunteer(ctx context.Context, eventID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	return c.postJSON(ctx, "/api/volunteer/unvolunteer/"+url.PathEscape(eventID), nil, true, nil)
}

// IsMeVolunteering reports the current user's volunteering state on the
// event and, when applicable, the application status.
func (c *Client) IsMeVolunteering(ctx context.Context, eventID string) (bool, string, error) {
	if eventID == "" {
		return false, "", model.NewMissingArgError("eventId")
	}

	var status volunteerStatus
	if err := c.getJSON(ctx, "/api/volunteer/isMeVolunteering/"+url.PathEscape(eventID), nil, true, &status); err != nil {
		return false, "", err
	}
	s := ""
	if status.Status != nil {
		s = *status.Status
	}
	return status.Volunteering, s, nil
}

// ListVolunteers fetches the volunteer applications on an event, as the
// hosting org.
func (c *Client) ListVolunteers(ctx context.Context, eventID string) ([]model.VolunteerEntry, error) {
	if eventID == "" {
		return nil, model.NewMissingArgError("eventId")
	}

	var entries []model.VolunteerEntry
	if err := c.getJSON(ctx, "/api/volunteer/event/"+url.PathEscape(eventID), nil, true, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ApproveVolunteer approves a pending volunteer application.
func (c *Client) ApproveVolunteer(ctx context.Context, eventID, userID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	if userID == "" {
		return model.NewMissingArgError("userId")
	}
	return c.postJSON(ctx, "/api/volunteer/approve/"+url.PathEscape(eventID)+"/"+url.PathEscape(userID), nil, true, nil)
}

// RejectVolunteer rejects a pending volunteer application.
func (c *Client) RejectVolunteer(ctx context.Context, eventID, userID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	if userID == "" {
		return model.NewMissingArgError("userId")
	}
	return c.postJSON(ctx, "/api/volunteer/reject/"+url.PathEscape(eventID)+"/"+url.PathEscape(userID), nil, true, nil)
}

package client

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/sahyog-app/sahyog/internal/model"
)

// ListEvents fetches published events, optionally narrowed by filter and
// paginated.
func (c *Client) ListEvents(ctx context.Context, filter model.EventFilter, opts model.ListOptions) ([]model.Event, error) {
	q := listQuery(opts)
	setOpt(q, "city", filter.City)
	setOpt(q, "category", filter.Category)
	setOpt(q, "org", filter.OrgID)
	if filter.Upcoming {
		q.Set("upcoming", "true")
	}

	var events []model.Event
	if err := c.getJSON(ctx, "/api/events", q, false, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	if eventID == "" {
		return nil, model.NewMissingArgError("eventId")
	}

	var event model.Event
	if err := c.getJSON(ctx, "/api/events/"+url.PathEscape(eventID), nil, false, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListOrgEvents fetches the events hosted by one org.
func (c *Client) ListOrgEvents(ctx context.Context, orgID string, opts model.ListOptions) ([]model.Event, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var events []model.Event
	if err := c.getJSON(ctx, "/api/events/org/"+url.PathEscape(orgID), listQuery(opts), false, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent submits a new event as the current org actor. The payload
// is multipart because of the optional cover image.
func (c *Client) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	body, contentType, err := eventForm(eventFormFields{
		title:            req.Title,
		description:      req.Description,
		category:         req.Category,
		city:             req.City,
		venue:            req.Venue,
		startTime:        &req.StartTime,
		endTime:          req.EndTime,
		needsVolunteers:  &req.NeedsVolunteers,
		volunteerSlots:   req.VolunteerSlots,
		acceptsDonations: &req.AcceptsDonations,
		coverImage:       req.CoverImage,
		coverImageName:   req.CoverImageName,
	})
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := c.call(ctx, "POST", "/api/events/create", nil, body, contentType, true, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent submits a partial update to an existing event.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, req model.UpdateEventRequest) (*model.Event, error) {
	if eventID == "" {
		return nil, model.NewMissingArgError("eventId")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	fields := eventFormFields{
		coverImage:     req.CoverImage,
		coverImageName: req.CoverImageName,
		startTime:      req.StartTime,
		endTime:        req.EndTime,
		volunteerSlots: req.VolunteerSlots,
	}
	if req.Title != nil {
		fields.title = *req.Title
	}
	if req.Description != nil {
		fields.description = *req.Description
	}
	if req.Category != nil {
		fields.category = *req.Category
	}
	if req.City != nil {
		fields.city = *req.City
	}
	if req.Venue != nil {
		fields.venue = *req.Venue
	}
	if req.Status != nil {
		fields.status = *req.Status
	}

	body, contentType, err := eventForm(fields)
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := c.call(ctx, "PUT", "/api/events/update/"+url.PathEscape(eventID), nil, body, contentType, true, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event owned by the current org actor.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return model.NewMissingArgError("eventId")
	}
	return c.delete(ctx, "/api/events/"+url.PathEscape(eventID), nil)
}

// eventFormFields flattens create/update submissions into one multipart
// builder. Pointer fields are written only when present.
type eventFormFields struct {
	title, description, category, city, venue, status string

	startTime        *time.Time
	endTime          *time.Time
	needsVolunteers  *bool
	volunteerSlots   *int
	acceptsDonations *bool

	coverImage     []byte
	coverImageName string
}

func eventForm(f eventFormFields) (io.Reader, string, error) {
	m := newMultipartBody().
		field("title", f.title).
		field("description", f.description).
		field("category", f.category).
		field("city", f.city).
		field("venue", f.venue).
		field("status", f.status)

	if f.startTime != nil && !f.startTime.IsZero() {
		m.field("start_time", f.startTime.UTC().Format(time.RFC3339))
	}
	if f.endTime != nil && !f.endTime.IsZero() {
		m.field("end_time", f.endTime.UTC().Format(time.RFC3339))
	}
	if f.needsVolunteers != nil {
		m.boolField("needs_volunteers", *f.needsVolunteers)
	}
	if f.volunteerSlots != nil {
		m.field("volunteer_slots", strconv.Itoa(*f.volunteerSlots))
	}
	if f.acceptsDonations != nil {
		m.boolField("accepts_donations", *f.acceptsDonations)
	}
	m.file("cover_image", f.coverImageName, f.coverImage)

	r, ct, err := m.finish()
	if err != nil {
		return nil, "", err
	}
	return r, ct, nil
}

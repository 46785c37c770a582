package model

import "time"

// Event represents a community event hosted by an org.
type Event struct {
	ID          string     `json:"id"`
	OrgID       string     `json:"org_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	City        *string    `json:"city,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`

	// Volunteering configuration
	NeedsVolunteers bool `json:"needs_volunteers"`
	VolunteerSlots  *int `json:"volunteer_slots,omitempty"`

	// Donations
	AcceptsDonations bool   `json:"accepts_donations"`
	DonationGoal     *int64 `json:"donation_goal,omitempty"` // paise

	CoverImage *string `json:"cover_image,omitempty"`

	// Denormalized counts for display
	AttendeeCount  int `json:"attendee_count"`
	VolunteerCount int `json:"volunteer_count"`

	Status    string    `json:"status"` // draft, published, cancelled, completed
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// EventStatus constants
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Constraints
const (
	MaxEventTitleLength = 150
	MaxEventDescLength  = 5000
)

// CreateEventRequest represents an event creation submission. The cover
// image travels as a multipart file part; everything else is stringified.
type CreateEventRequest struct {
	Title            string
	Description      string
	Category         string
	City             string
	Venue            string
	StartTime        time.Time
	EndTime          *time.Time
	NeedsVolunteers  bool
	VolunteerSlots   *int
	AcceptsDonations bool

	// CoverImage is the file contents; CoverImageName its filename.
	// Both empty when no image is attached.
	CoverImage     []byte
	CoverImageName string
}

// Validate validates a CreateEventRequest.
func (r *CreateEventRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxEventTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title too long"})
	}

	if len(r.Description) > MaxEventDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description too long"})
	}

	if r.StartTime.IsZero() {
		errors = append(errors, FieldError{Field: "start_time", Message: "start_time is required"})
	}

	if r.EndTime != nil && !r.EndTime.After(r.StartTime) {
		errors = append(errors, FieldError{Field: "end_time", Message: "end_time must be after start_time"})
	}

	if r.VolunteerSlots != nil && *r.VolunteerSlots < 0 {
		errors = append(errors, FieldError{Field: "volunteer_slots", Message: "volunteer_slots cannot be negative"})
	}

	if r.CoverImage != nil && r.CoverImageName == "" {
		errors = append(errors, FieldError{Field: "cover_image", Message: "cover image filename is required"})
	}

	return errors
}

// UpdateEventRequest carries partial event updates. Nil fields are left
// unchanged by the backend.
type UpdateEventRequest struct {
	Title          *string
	Description    *string
	Category       *string
	City           *string
	Venue          *string
	StartTime      *time.Time
	EndTime        *time.Time
	VolunteerSlots *int
	Status         *string

	CoverImage     []byte
	CoverImageName string
}

// Validate validates an UpdateEventRequest.
func (r *UpdateEventRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil && *r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if r.Title != nil && len(*r.Title) > MaxEventTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title too long"})
	}

	if r.Status != nil {
		switch *r.Status {
		case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		default:
			errors = append(errors, FieldError{Field: "status", Message: "invalid status"})
		}
	}

	if r.CoverImage != nil && r.CoverImageName == "" {
		errors = append(errors, FieldError{Field: "cover_image", Message: "cover image filename is required"})
	}

	return errors
}

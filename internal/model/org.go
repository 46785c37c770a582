package model

import "time"

// Org represents an organization profile.
type Org struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Description   *string   `json:"description,omitempty"`
	Website       *string   `json:"website,omitempty"`
	City          *string   `json:"city,omitempty"`
	Logo          *string   `json:"logo,omitempty"`
	Verified      bool      `json:"verified"`
	FollowerCount int       `json:"follower_count"`
	CreatedOn     time.Time `json:"created_on"`
}

// OrgDoc represents a verification document an org submitted for admin
// review.
type OrgDoc struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"org_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedOn time.Time `json:"uploaded_on"`
}

// OrgDashboard aggregates the org home screen data in one response.
type OrgDashboard struct {
	Org             Org     `json:"org"`
	UpcomingEvents  []Event `json:"upcoming_events"`
	TotalEvents     int     `json:"total_events"`
	TotalVolunteers int     `json:"total_volunteers"`
	TotalDonations  int64   `json:"total_donations"` // paise
}

// User represents a participant profile.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// UpdateProfileRequest carries partial profile updates for the current
// actor. The avatar travels as a multipart file part.
type UpdateProfileRequest struct {
	Name     *string
	Phone    *string
	Location *string
	Website  *string

	Avatar     []byte
	AvatarName string
}

// Validate validates an UpdateProfileRequest.
func (r *UpdateProfileRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil && *r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
	}

	if r.Avatar != nil && r.AvatarName == "" {
		errors = append(errors, FieldError{Field: "avatar", Message: "avatar filename is required"})
	}

	return errors
}

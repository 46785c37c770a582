package model

import (
	"math"
	"time"
)

// Review represents star-rated feedback left on an org by a user.
type Review struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	UserID    string    `json:"user_id"`
	Stars     float64   `json:"stars"` // 0.5 steps, 0.5..5
	Comment   *string   `json:"comment,omitempty"`
	EventID   *string   `json:"event_id,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// Constraints
const (
	MaxReviewCommentLength = 2000
	MaxStars               = 5
)

// CreateReviewRequest represents a review submission.
type CreateReviewRequest struct {
	OrgID   string
	Stars   float64
	Comment string
	EventID string
}

// Validate validates a CreateReviewRequest.
func (r *CreateReviewRequest) Validate() []FieldError {
	var errors []FieldError

	if r.OrgID == "" {
		errors = append(errors, FieldError{Field: "org_id", Message: "org_id is required"})
	}

	if r.Stars < 0.5 || r.Stars > MaxStars {
		errors = append(errors, FieldError{Field: "stars", Message: "stars must be between 0.5 and 5"})
	} else if math.Mod(r.Stars*2, 1) != 0 {
		errors = append(errors, FieldError{Field: "stars", Message: "stars must be in half-star steps"})
	}

	if len(r.Comment) > MaxReviewCommentLength {
		errors = append(errors, FieldError{Field: "comment", Message: "comment too long"})
	}

	return errors
}

// NormalizeStars converts a raw rating average into the half-star display
// scale: rounded to the nearest 0.5 and clamped to [0, 5].
func NormalizeStars(avg float64) float64 {
	if math.IsNaN(avg) || avg <= 0 {
		return 0
	}
	if avg > MaxStars {
		return MaxStars
	}
	return math.Round(avg*2) / 2
}

// RatingSummary aggregates an org's reviews for display.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// DisplayStars returns the summary average on the half-star scale.
func (s RatingSummary) DisplayStars() float64 {
	return NormalizeStars(s.Average)
}

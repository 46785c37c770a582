package model

import "time"

// Notification represents a single inbox item.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // follow, volunteer_approved, event_reminder, donation_receipt, collab, chat
	Title     string    `json:"title"`
	Body      *string   `json:"body,omitempty"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedOn time.Time `json:"created_on"`
}

// UnreadCountPageLimit is the backend's hard page cap on the unread
// listing. The backend exposes no true count endpoint, so any count
// derived from a single page is exact only below this limit.
const UnreadCountPageLimit = 200

// UnreadCount reports the number of unread notifications. Capped is true
// when the page limit was hit, meaning Count is a lower bound rather than
// an exact figure.
type UnreadCount struct {
	Count  int
	Capped bool
}

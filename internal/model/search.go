package model

// SearchResults groups full-text search hits by entity type.
type SearchResults struct {
	Events []Event `json:"events"`
	Orgs   []Org   `json:"orgs"`
}

// Suggestion represents one typeahead entry from the suggest endpoint.
type Suggestion struct {
	Kind  string `json:"kind"` // event, org
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListOptions carries optional pagination for list endpoints. Zero values
// are omitted from the query string.
type ListOptions struct {
	Page  int
	Limit int
}

// EventFilter narrows event listings. Empty fields are omitted from the
// query string rather than sent as empty strings.
type EventFilter struct {
	City     string
	Category string
	OrgID    string
	Upcoming bool
}

// VolunteerStatus constants for a user's volunteering state on an event.
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
)

// VolunteerEntry represents one volunteer application on an event, as seen
// by the hosting org.
type VolunteerEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

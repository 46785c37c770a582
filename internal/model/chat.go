package model

import "time"

// Conversation represents a chat thread between a user and an org.
type Conversation struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	OrgID         string     `json:"org_id"`
	LastMessage   *string    `json:"last_message,omitempty"`
	LastMessageOn *time.Time `json:"last_message_on,omitempty"`
	UnreadCount   int        `json:"unread_count"`
	CreatedOn     time.Time  `json:"created_on"`
}

// Message represents a single chat message within a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderKind     ActorKind `json:"sender_type"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedOn      time.Time `json:"created_on"`
}

// MaxMessageLength caps a single chat message.
const MaxMessageLength = 4000

// SendMessageRequest represents an outgoing chat message.
type SendMessageRequest struct {
	ConversationID string
	Body           string
}

// Validate validates a SendMessageRequest.
func (r *SendMessageRequest) Validate() []FieldError {
	var errors []FieldError

	if r.ConversationID == "" {
		errors = append(errors, FieldError{Field: "conversation_id", Message: "conversation_id is required"})
	}

	if r.Body == "" {
		errors = append(errors, FieldError{Field: "body", Message: "body is required"})
	} else if len(r.Body) > MaxMessageLength {
		errors = append(errors, FieldError{Field: "body", Message: "message too long"})
	}

	return errors
}

// CollabRequest represents a collaboration request between two orgs on an
// event.
type CollabRequest struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	FromOrgID   string    `json:"from_org_id"`
	ToOrgID     string    `json:"to_org_id"`
	Note        *string   `json:"note,omitempty"`
	Status      string    `json:"status"` // pending, accepted, rejected
	CreatedOn   time.Time `json:"created_on"`
	RespondedOn *time.Time `json:"responded_on,omitempty"`
}

// CollabStatus constants
const (
	CollabStatusPending  = "pending"
	CollabStatusAccepted = "accepted"
	CollabStatusRejected = "rejected"
)

// CreateCollabRequest represents a new collaboration proposal.
type CreateCollabRequest struct {
	EventID string
	ToOrgID string
	Note    string
}

// Validate validates a CreateCollabRequest.
func (r *CreateCollabRequest) Validate() []FieldError {
	var errors []FieldError

	if r.EventID == "" {
		errors = append(errors, FieldError{Field: "event_id", Message: "event_id is required"})
	}
	if r.ToOrgID == "" {
		errors = append(errors, FieldError{Field: "to_org_id", Message: "to_org_id is required"})
	}

	return errors
}

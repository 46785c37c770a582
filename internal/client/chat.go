package client

import (
	"context"
	"net/url"

	"github.com/sahyog-app/sahyog/internal/model"
)

// ListConversations fetches the current actor's chat threads.
func (c *Client) ListConversations(ctx context.Context, opts model.ListOptions) ([]model.Conversation, error) {
	var convos []model.Conversation
	if err := c.getJSON(ctx, "/api/chat/conversations", listQuery(opts), true, &convos); err != nil {
		return nil, err
	}
	return convos, nil
}

// OpenConversation finds or creates the thread between the current user
// and the org.
func (c *Client) OpenConversation(ctx context.Context, orgID string) (*model.Conversation, error) {
	if orgID == "" {
		return nil, model.NewMissingArgError("orgId")
	}

	var convo model.Conversation
	body := map[string]string{"org_id": orgID}
	if err := c.postJSON(ctx, "/api/chat/conversations", body, true, &convo); err != nil {
		return nil, err
	}
	return &convo, nil
}

// ListMessages fetches the messages of one conversation, oldest first.
func (c *Client) ListMessages(ctx context.Context, conversationID string, opts model.ListOptions) ([]model.Message, error) {
	if conversationID == "" {
		return nil, model.NewMissingArgError("conversationId")
	}

	var msgs []model.Message
	if err := c.getJSON(ctx, "/api/chat/conversations/"+url.PathEscape(conversationID)+"/messages", listQuery(opts), true, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage posts a message into a conversation.
func (c *Client) SendMessage(ctx context.Context, req model.SendMessageRequest) (*model.Message, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	var msg model.Message
	body := map[string]string{"body": req.Body}
	if err := c.postJSON(ctx, "/api/chat/conversations/"+url.PathEscape(req.ConversationID)+"/messages", body, true, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sahyog-app/sahyog/internal/model"
)

// ListNotifications fetches the current actor's inbox, newest first.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool, opts model.ListOptions) ([]model.Notification, error) {
	q := listQuery(opts)
	if unreadOnly {
		q.Set("unread", "true")
	}

	var items []model.Notification
	if err := c.getJSON(ctx, "/api/notifications", q, true, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CountUnread derives the unread badge count. The backend has no count
// endpoint, so this lists unread items up to the 200-item page cap and
// counts them; when the cap is hit the result is marked capped so the
// caller can render "200+" instead of a wrong exact number.
func (c *Client) CountUnread(ctx context.Context) (model.UnreadCount, error) {
	q := url.Values{}
	q.Set("unread", "true")
	q.Set("limit", strconv.Itoa(model.UnreadCountPageLimit))

	var items []model.Notification
	if err := c.getJSON(ctx, "/api/notifications", q, true, &items); err != nil {
		return model.UnreadCount{}, err
	}
	return model.UnreadCount{
		Count:  len(items),
		Capped: len(items) >= model.UnreadCountPageLimit,
	}, nil
}

// MarkRead marks one notification as read.
func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return model.NewMissingArgError("notificationId")
	}
	return c.patchJSON(ctx, "/api/notifications/"+url.PathEscape(notificationID)+"/read", nil, true, nil)
}

// MarkAllRead marks the whole inbox as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.patchJSON(ctx, "/api/notifications/readAll", nil, true, nil)
}

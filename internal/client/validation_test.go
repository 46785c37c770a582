package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahyog-app/sahyog/internal/model"
)

// Every client function with a required identifier must fail fast on an
// empty value, before any network I/O.
func TestRequiredIdentifiers_FailFastWithoutNetwork(t *testing.T) {
	b := newFakeBackend(t)
	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))
	ctx := context.Background()

	calls := map[string]func() error{
		"GetEvent": func() error {
			_, err := c.GetEvent(ctx, "")
			return err
		},
		"UpdateEvent": func() error {
			_, err := c.UpdateEvent(ctx, "", model.UpdateEventRequest{})
			return err
		},
		"DeleteEvent": func() error { return c.DeleteEvent(ctx, "") },
		"GetUser": func() error {
			_, err := c.GetUser(ctx, "")
			return err
		},
		"IsMeAttending": func() error {
			_, err := c.IsMeAttending(ctx, "")
			return err
		},
		"IsMeVolunteering": func() error {
			_, _, err := c.IsMeVolunteering(ctx, "")
			return err
		},
		"ListAttendees": func() error {
			_, err := c.ListAttendees(ctx, "", model.ListOptions{})
			return err
		},
		"OpenConversation": func() error {
			_, err := c.OpenConversation(ctx, "")
			return err
		},
		"SendMessage": func() error {
			_, err := c.SendMessage(ctx, model.SendMessageRequest{})
			return err
		},
		"ListOrgEvents": func() error {
			_, err := c.ListOrgEvents(ctx, "", model.ListOptions{})
			return err
		},
		"GetOrg": func() error {
			_, err := c.GetOrg(ctx, "")
			return err
		},
		"DoIFollow": func() error {
			_, err := c.DoIFollow(ctx, "")
			return err
		},
		"FollowOrg":    func() error { return c.FollowOrg(ctx, "") },
		"UnfollowOrg":  func() error { return c.UnfollowOrg(ctx, "") },
		"Attend":       func() error { return c.Attend(ctx, "") },
		"Unattend":     func() error { return c.Unattend(ctx, "") },
		"Volunteer":    func() error { return c.Volunteer(ctx, "") },
		"Unvolunteer":  func() error { return c.Unvolunteer(ctx, "") },
		"ApproveVolunteer_event": func() error { return c.ApproveVolunteer(ctx, "", "u-1") },
		"ApproveVolunteer_user":  func() error { return c.ApproveVolunteer(ctx, "evt-1", "") },
		"RejectVolunteer":        func() error { return c.RejectVolunteer(ctx, "evt-1", "") },
		"ListEventDonations": func() error {
			_, err := c.ListEventDonations(ctx, "", model.ListOptions{})
			return err
		},
		"ListUserDonations": func() error {
			_, err := c.ListUserDonations(ctx, "", model.ListOptions{})
			return err
		},
		"CreatePaymentOrder": func() error {
			_, err := c.CreatePaymentOrder(ctx, "", "10")
			return err
		},
		"VerifyPayment": func() error {
			_, err := c.VerifyPayment(ctx, "", "pay-1", "sig")
			return err
		},
		"ListOrgDocs": func() error {
			_, err := c.ListOrgDocs(ctx, "")
			return err
		},
		"VerifyOrg": func() error {
			_, err := c.VerifyOrg(ctx, "", true)
			return err
		},
		"RespondCollabRequest": func() error {
			_, err := c.RespondCollabRequest(ctx, "", true)
			return err
		},
		"ListMessages": func() error {
			_, err := c.ListMessages(ctx, "", model.ListOptions{})
			return err
		},
		"MarkRead": func() error { return c.MarkRead(ctx, "") },
		"ListOrgReviews": func() error {
			_, err := c.ListOrgReviews(ctx, "", model.ListOptions{})
			return err
		},
		"DeleteReview": func() error { return c.DeleteReview(ctx, "") },
	}

	for name, call := range calls {
		err := call()
		assert.ErrorIs(t, err, model.ErrValidation, "%s with empty identifier", name)
	}
	assert.Zero(t, b.requestCount(), "no validation failure may reach the network")
}

func TestCreateCollabRequest_ValidationAggregatesFields(t *testing.T) {
	b := newFakeBackend(t)
	c, store := newTestClient(t, b)
	require.NoError(t, store.Set("tok-valid"))

	_, err := c.CreateCollabRequest(context.Background(), model.CreateCollabRequest{})
	require.Error(t, err)

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindValidation, apiErr.Kind)
	assert.Len(t, apiErr.Fields, 2)
	assert.Zero(t, b.requestCount())
}

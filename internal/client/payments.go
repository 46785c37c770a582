package client

import (
	"context"

	"github.com/sahyog-app/sahyog/internal/model"
)

// createOrderBody is the gateway order request. Amount is in paise.
type createOrderBody struct {
	EventID     string `json:"event_id"`
	AmountPaise int64  `json:"amount"`
}

// verifyPaymentBody carries the gateway's callback parameters back to the
// backend for signature verification.
type verifyPaymentBody struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// CreatePaymentOrder opens a gateway order for a donation. The rupee
// amount is converted to paise exactly; "19.99" transmits as 1999.
func (c *Client) CreatePaymentOrder(ctx context.Context, eventID, amountRupees string) (*model.PaymentOrder, error) {
	if eventID == "" {
		return nil, model.NewMissingArgError("eventId")
	}

	paise, err := model.PaiseFromRupees(amountRupees)
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{{Field: "amount", Message: err.Error()}})
	}

	var order model.PaymentOrder
	if err := c.postJSON(ctx, "/api/payment/create", createOrderBody{EventID: eventID, AmountPaise: paise}, true, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment confirms a completed gateway payment with the backend.
func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*model.Donation, error) {
	if orderID == "" {
		return nil, model.NewMissingArgError("orderId")
	}
	if paymentID == "" {
		return nil, model.NewMissingArgError("paymentId")
	}
	if signature == "" {
		return nil, model.NewMissingArgError("signature")
	}

	var donation model.Donation
	body := verifyPaymentBody{OrderID: orderID, PaymentID: paymentID, Signature: signature}
	if err := c.postJSON(ctx, "/api/payment/verify", body, true, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

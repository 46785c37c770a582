package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Donation represents a supporter contribution to an event. Amounts are
// carried in paise (minor currency units) end to end; rupees exist only at
// the input boundary.
type Donation struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	UserID      *string   `json:"user_id,omitempty"` // nil = anonymous
	AmountPaise int64     `json:"amount"`
	Note        *string   `json:"note,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// PaymentOrder represents a gateway order created for a pending donation.
type PaymentOrder struct {
	OrderID     string `json:"order_id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// PaiseFromRupees converts a rupee amount given as a decimal string into
// paise. The conversion is exact for all positive integer and two-decimal
// inputs: "10" -> 1000, "19.99" -> 1999. Parsing works on the string
// directly so no floating-point drift can occur at the boundary.
func PaiseFromRupees(rupees string) (int64, error) {
	s := strings.TrimSpace(rupees)
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("invalid rupee amount %q", rupees)
	}

	var p int64
	switch len(frac) {
	case 0:
	case 1:
		d, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid rupee amount %q", rupees)
		}
		p = int64(d) * 10
	case 2:
		d, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid rupee amount %q", rupees)
		}
		p = int64(d)
	default:
		return 0, fmt.Errorf("rupee amount %q has more than two decimal places", rupees)
	}

	total := w*100 + p
	if total <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return total, nil
}

// RupeesFromPaise renders a paise amount as a rupee string for display.
func RupeesFromPaise(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}

// CreateDonationRequest represents a donation submission.
type CreateDonationRequest struct {
	EventID string
	// AmountRupees is the user-entered amount, e.g. "250" or "19.99".
	AmountRupees string
	Note         string
	Anonymous    bool
}

// Validate validates a CreateDonationRequest.
func (r *CreateDonationRequest) Validate() []FieldError {
	var errors []FieldError

	if r.EventID == "" {
		errors = append(errors, FieldError{Field: "event_id", Message: "event_id is required"})
	}

	if _, err := PaiseFromRupees(r.AmountRupees); err != nil {
		errors = append(errors, FieldError{Field: "amount", Message: err.Error()})
	}

	return errors
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaiseFromRupees_Exact(t *testing.T) {
	cases := map[string]int64{
		"10":       1000,
		"19.99":    1999,
		"0.01":     1,
		"0.5":      50,
		"1.5":      150,
		".50":      50,
		"250":      25000,
		" 42 ":     4200,
		"10.":      1000,
		"99999.99": 9999999,
	}

	for in, want := range cases {
		got, err := PaiseFromRupees(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestPaiseFromRupees_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"abc",
		"19.999", // more than two decimal places
		"-5",
		"5.-1",
		"5.+1",
		"0",
		"0.00",
		"1e2",
		"₹100",
	} {
		_, err := PaiseFromRupees(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestRupeesFromPaise(t *testing.T) {
	assert.Equal(t, "19.99", RupeesFromPaise(1999))
	assert.Equal(t, "10.00", RupeesFromPaise(1000))
	assert.Equal(t, "0.01", RupeesFromPaise(1))
	assert.Equal(t, "-2.50", RupeesFromPaise(-250))
}

func TestRupeePaiseRoundTrip(t *testing.T) {
	for _, paise := range []int64{1, 50, 99, 100, 1999, 123456789} {
		back, err := PaiseFromRupees(RupeesFromPaise(paise))
		require.NoError(t, err)
		assert.Equal(t, paise, back)
	}
}

func TestCreateDonationRequest_Validate(t *testing.T) {
	ok := CreateDonationRequest{EventID: "evt-1", AmountRupees: "19.99"}
	assert.Empty(t, ok.Validate())

	bad := CreateDonationRequest{}
	errs := bad.Validate()
	assert.Len(t, errs, 2)
}

package domain_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GateFare/GateFare/internal/domain"
)

func TestIsDomestic(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"two US metro codes", "NYC", "LAX", true},
		{"US to Europe", "NYC", "FRA", false},
		{"Europe to Asia", "FRA", "TYO", false},
		{"identical prefixes count as domestic", "FRA", "FRX", true},
		{"short codes are compared whole", "NY", "NY", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := domain.Itinerary{
				Departure: domain.Endpoint{Code: tt.from},
				Arrival:   domain.Endpoint{Code: tt.to},
			}
			assert.Equal(t, tt.want, domain.IsDomestic(it))
		})
	}
}

func TestCoupon_ApplyMatrix(t *testing.T) {
	domestic := domesticItinerary(200)
	international := internationalItinerary(500)

	tests := []struct {
		name       string
		code       string
		itinerary  domain.Itinerary
		wantRate   float64
		wantErrMsg string
	}{
		{"DOM10 on domestic", "DOM10", domestic, 0.10, ""},
		{"INT20 on international", "INT20", international, 0.20, ""},
		{"DOM10 on international", "DOM10", international, 0, "This coupon is only valid for domestic flights"},
		{"INT20 on domestic", "INT20", domestic, 0, "This coupon is only valid for international flights"},
		{"unknown code", "SAVE99", domestic, 0, "Invalid coupon code"},
		{"input is trimmed and uppercased", "  dom10 ", domestic, 0.10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c domain.CouponState
			err := c.Apply(tt.code, tt.itinerary)

			if tt.wantErrMsg == "" {
				require.NoError(t, err)
				assert.True(t, c.Applied)
				assert.Equal(t, tt.wantRate, c.DiscountRate)
				assert.Empty(t, c.ErrorMessage)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrCouponRejected))
			assert.False(t, c.Applied)
			assert.Zero(t, c.DiscountRate)
			assert.Equal(t, tt.wantErrMsg, c.ErrorMessage)
		})
	}
}

func TestCoupon_EmptyCodeRejected(t *testing.T) {
	var c domain.CouponState
	err := c.Apply("   ", domesticItinerary(100))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCouponRejected))
	assert.Equal(t, "Please select a coupon", c.ErrorMessage)
}

func TestCoupon_RejectionOverwritesPriorDiscount(t *testing.T) {
	it := domesticItinerary(100)

	var c domain.CouponState
	require.NoError(t, c.Apply("DOM10", it))
	require.Equal(t, 0.10, c.DiscountRate)

	err := c.Apply("INT20", it)
	require.Error(t, err)
	assert.False(t, c.Applied)
	assert.Zero(t, c.DiscountRate)
}

func TestCoupon_RemoveAlwaysClears(t *testing.T) {
	it := domesticItinerary(100)

	var c domain.CouponState
	require.NoError(t, c.Apply("DOM10", it))
	c.Remove()
	assert.Equal(t, domain.CouponState{}, c)

	// Remove after a rejection clears the error too.
	_ = c.Apply("BOGUS", it)
	c.Remove()
	assert.Equal(t, domain.CouponState{}, c)
}

func TestCoupon_CrossApplicationLeavesTotalUnchanged(t *testing.T) {
	it := domesticItinerary(200)
	ps := passengersOf(2)

	var c domain.CouponState
	before := domain.Quote(it, ps, domain.SeatSelection{}, domain.AddonsSelection{Cancellation: domain.CancellationNone}, c)

	require.Error(t, c.Apply("INT20", it))

	after := domain.Quote(it, ps, domain.SeatSelection{}, domain.AddonsSelection{Cancellation: domain.CancellationNone}, c)
	assert.Equal(t, before, after)
}

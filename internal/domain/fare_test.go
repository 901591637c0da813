package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GateFare/GateFare/internal/domain"
)

func domesticItinerary(price float64) domain.Itinerary {
	return domain.Itinerary{
		Airline:      "Delta Air Lines",
		FlightNumber: "DL 2847",
		Departure:    domain.Endpoint{City: "New York", Code: "NYC", Time: "08:15"},
		Arrival:      domain.Endpoint{City: "Los Angeles", Code: "LAX", Time: "11:42"},
		Duration:     "6h 27m",
		BasePrice:    price,
	}
}

func internationalItinerary(price float64) domain.Itinerary {
	return domain.Itinerary{
		Airline:      "United Airlines",
		FlightNumber: "UA 901",
		Departure:    domain.Endpoint{City: "Frankfurt", Code: "FRA", Time: "13:30"},
		Arrival:      domain.Endpoint{City: "Tokyo", Code: "TYO", Time: "09:10"},
		Duration:     "11h 40m",
		BasePrice:    price,
	}
}

func passengersOf(n int) []domain.Passenger {
	ps := make([]domain.Passenger, n)
	for i := range ps {
		ps[i] = domain.NewPassenger()
	}
	return ps
}

func TestQuote_BaseContribution(t *testing.T) {
	it := domesticItinerary(199)
	for n := 1; n <= 6; n++ {
		got := domain.Quote(it, passengersOf(n), domain.SeatSelection{}, domain.AddonsSelection{Cancellation: domain.CancellationNone}, domain.CouponState{})
		assert.Equal(t, 199*n, got, "passenger count %d", n)
	}
}

func TestQuote_IsPure(t *testing.T) {
	it := domesticItinerary(321)
	ps := passengersOf(3)
	ps[1].Baggage = domain.BaggageAdd
	ps[2].TicketExchange = true
	seat := "14C"
	seats := domain.SeatSelection{SeatNumber: &seat, Price: 24}
	addons := domain.AddonsSelection{FlexibleTicket: true, Cancellation: domain.CancellationFlexible, PremiumService: true}
	coupon := domain.CouponState{Code: "DOM10", Applied: true, DiscountRate: 0.10}

	first := domain.Quote(it, ps, seats, addons, coupon)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, domain.Quote(it, ps, seats, addons, coupon))
	}
}

func TestQuote_AddonPricing(t *testing.T) {
	it := domesticItinerary(100)

	tests := []struct {
		name   string
		mutate func(ps []domain.Passenger, seats *domain.SeatSelection, addons *domain.AddonsSelection)
		want   int
	}{
		{
			name:   "no extras",
			mutate: func([]domain.Passenger, *domain.SeatSelection, *domain.AddonsSelection) {},
			want:   200,
		},
		{
			name: "baggage is per passenger who adds it",
			mutate: func(ps []domain.Passenger, _ *domain.SeatSelection, _ *domain.AddonsSelection) {
				ps[0].Baggage = domain.BaggageAdd
			},
			want: 250,
		},
		{
			name: "ticket exchange and sms updates",
			mutate: func(ps []domain.Passenger, _ *domain.SeatSelection, _ *domain.AddonsSelection) {
				ps[0].TicketExchange = true
				ps[1].SMSUpdates = true
			},
			want: 200 + 54 + 6,
		},
		{
			name: "seat price added once",
			mutate: func(_ []domain.Passenger, seats *domain.SeatSelection, _ *domain.AddonsSelection) {
				n := "22A"
				seats.SeatNumber = &n
				seats.Price = 35
			},
			want: 235,
		},
		{
			name: "flexible ticket scales with passengers",
			mutate: func(_ []domain.Passenger, _ *domain.SeatSelection, addons *domain.AddonsSelection) {
				addons.FlexibleTicket = true
			},
			want: 200 + 45*2,
		},
		{
			name: "cancellation any reason",
			mutate: func(_ []domain.Passenger, _ *domain.SeatSelection, addons *domain.AddonsSelection) {
				addons.Cancellation = domain.CancellationAnyReason
			},
			want: 200 + 65*2,
		},
		{
			name: "cancellation flexible",
			mutate: func(_ []domain.Passenger, _ *domain.SeatSelection, addons *domain.AddonsSelection) {
				addons.Cancellation = domain.CancellationFlexible
			},
			want: 200 + 37*2,
		},
		{
			name: "premium service scales with passengers",
			mutate: func(_ []domain.Passenger, _ *domain.SeatSelection, addons *domain.AddonsSelection) {
				addons.PremiumService = true
			},
			want: 200 + 12*2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := passengersOf(2)
			seats := domain.SeatSelection{}
			addons := domain.AddonsSelection{Cancellation: domain.CancellationNone}
			tt.mutate(ps, &seats, &addons)

			assert.Equal(t, tt.want, domain.Quote(it, ps, seats, addons, domain.CouponState{}))
		})
	}
}

func TestQuote_TwoPassengersOneBag(t *testing.T) {
	it := domesticItinerary(200)
	ps := passengersOf(2)
	ps[0].Baggage = domain.BaggageAdd

	got := domain.Quote(it, ps, domain.SeatSelection{}, domain.AddonsSelection{Cancellation: domain.CancellationNone}, domain.CouponState{})
	require.Equal(t, 450, got)
}

func TestQuote_DiscountAppliesToFullSubtotal(t *testing.T) {
	it := internationalItinerary(500)
	ps := passengersOf(1)
	addons := domain.AddonsSelection{Cancellation: domain.CancellationFlexible, PremiumService: true}

	var coupon domain.CouponState
	require.NoError(t, coupon.Apply("INT20", it))

	// 500 + 12 + 37 = 549, then 20% off.
	got := domain.Quote(it, ps, domain.SeatSelection{}, addons, coupon)
	require.Equal(t, 439, got)
}

func TestQuoteBreakdown_MatchesQuote(t *testing.T) {
	it := domesticItinerary(200)
	ps := passengersOf(2)
	ps[0].Baggage = domain.BaggageAdd
	ps[1].SMSUpdates = true
	seat := "3F"
	seats := domain.SeatSelection{SeatNumber: &seat, Price: 18}
	addons := domain.AddonsSelection{FlexibleTicket: true, Cancellation: domain.CancellationAnyReason}

	var coupon domain.CouponState
	require.NoError(t, coupon.Apply("DOM10", it))

	b := domain.QuoteBreakdown(it, ps, seats, addons, coupon)

	assert.Equal(t, 400, b.Base)
	assert.Equal(t, 50, b.Baggage)
	assert.Equal(t, 6, b.SMSUpdates)
	assert.Equal(t, 18, b.Seat)
	assert.Equal(t, 90, b.FlexibleTicket)
	assert.Equal(t, 130, b.Cancellation)
	assert.Equal(t, domain.Quote(it, ps, seats, addons, coupon), b.Total)

	undiscounted := domain.Quote(it, ps, seats, addons, domain.CouponState{})
	assert.Equal(t, undiscounted-b.Total, b.Discount)
}

package domain

import (
	"math"

	"github.com/samber/lo"
)

// Add-on tariff in whole currency units.
const (
	BaggageFee         = 50
	TicketExchangeFee  = 54
	SMSUpdatesFee      = 6
	FlexibleTicketFee  = 45
	CancelAnyReasonFee = 65
	CancelFlexibleFee  = 37
	PremiumServiceFee  = 12
)

// Quote computes the total price for the current draft. Pure: no state is read
// or written outside the arguments, so callers may invoke it on every read.
// Order matters only for the coupon, which discounts the full subtotal last.
func Quote(it Itinerary, passengers []Passenger, seats SeatSelection, addons AddonsSelection, coupon CouponState) int {
	total := it.BasePrice * float64(len(passengers))

	for _, p := range passengers {
		if p.Baggage == BaggageAdd {
			total += BaggageFee
		}
		if p.TicketExchange {
			total += TicketExchangeFee
		}
		if p.SMSUpdates {
			total += SMSUpdatesFee
		}
	}

	total += seats.Price

	n := float64(len(passengers))
	if addons.FlexibleTicket {
		total += FlexibleTicketFee * n
	}
	switch addons.Cancellation {
	case CancellationAnyReason:
		total += CancelAnyReasonFee * n
	case CancellationFlexible:
		total += CancelFlexibleFee * n
	}
	if addons.PremiumService {
		total += PremiumServiceFee * n
	}

	if coupon.Applied && coupon.DiscountRate > 0 {
		total *= 1 - coupon.DiscountRate
	}

	return int(math.Round(total))
}

// Breakdown itemizes a quote for display. Total always equals Quote with the
// same inputs; Discount is the amount the coupon removed from the subtotal.
type Breakdown struct {
	Base           int `json:"base"`
	Baggage        int `json:"baggage"`
	TicketExchange int `json:"ticketExchange"`
	SMSUpdates     int `json:"smsUpdates"`
	Seat           int `json:"seat"`
	FlexibleTicket int `json:"flexibleTicket"`
	Cancellation   int `json:"cancellation"`
	PremiumService int `json:"premiumService"`
	Discount       int `json:"discount"`
	Total          int `json:"total"`
}

func QuoteBreakdown(it Itinerary, passengers []Passenger, seats SeatSelection, addons AddonsSelection, coupon CouponState) Breakdown {
	n := len(passengers)

	b := Breakdown{
		Base: int(math.Round(it.BasePrice * float64(n))),
		Baggage: BaggageFee * lo.CountBy(passengers, func(p Passenger) bool {
			return p.Baggage == BaggageAdd
		}),
		TicketExchange: TicketExchangeFee * lo.CountBy(passengers, func(p Passenger) bool {
			return p.TicketExchange
		}),
		SMSUpdates: SMSUpdatesFee * lo.CountBy(passengers, func(p Passenger) bool {
			return p.SMSUpdates
		}),
		Seat:  int(math.Round(seats.Price)),
		Total: Quote(it, passengers, seats, addons, coupon),
	}

	if addons.FlexibleTicket {
		b.FlexibleTicket = FlexibleTicketFee * n
	}
	switch addons.Cancellation {
	case CancellationAnyReason:
		b.Cancellation = CancelAnyReasonFee * n
	case CancellationFlexible:
		b.Cancellation = CancelFlexibleFee * n
	}
	if addons.PremiumService {
		b.PremiumService = PremiumServiceFee * n
	}

	undiscounted := Quote(it, passengers, seats, addons, CouponState{})
	b.Discount = undiscounted - b.Total

	return b
}

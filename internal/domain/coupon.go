package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Coupon codes and their discount rates. DOM10 is valid on domestic routes
// only, INT20 on international routes only.
const (
	CouponDomestic      = "DOM10"
	CouponInternational = "INT20"

	domesticDiscount      = 0.10
	internationalDiscount = 0.20
)

// domesticMarkets are two-letter fragments of the US metro markets the funnel
// sells into.
var domesticMarkets = []string{
	"NY", "LA", "SF", "CH", "MI", "DA", "HO",
	"AT", "BO", "SE", "DE", "PH", "LV", "OR",
}

// IsDomestic classifies an itinerary for coupon eligibility. The rule is a
// deliberately coarse placeholder for a real fare-rules lookup: it matches the
// first letter of each market fragment against the first two letters of the
// airport code, and treats identical prefixes as domestic. Do not tighten it
// without migrating the coupon terms that were priced against it.
func IsDomestic(it Itinerary) bool {
	dep := codePrefix(it.Departure.Code)
	arr := codePrefix(it.Arrival.Code)

	depMatch := lo.SomeBy(domesticMarkets, func(m string) bool {
		return strings.Contains(dep, m[:1])
	})
	arrMatch := lo.SomeBy(domesticMarkets, func(m string) bool {
		return strings.Contains(arr, m[:1])
	})

	return (depMatch && arrMatch) || dep == arr
}

func codePrefix(code string) string {
	if len(code) > 2 {
		return code[:2]
	}
	return code
}

// CouponState is mutated only through Apply and Remove. DiscountRate is
// nonzero only while Applied is true.
type CouponState struct {
	Code         string  `json:"code"`
	Applied      bool    `json:"applied"`
	DiscountRate float64 `json:"discountRate"`
	ErrorMessage string  `json:"errorMessage,omitempty"`
}

// Apply validates a code against the itinerary's classification. The input is
// trimmed and uppercased first. On rejection the discount is reset and the
// reason is kept both in ErrorMessage and on the returned error.
func (c *CouponState) Apply(code string, it Itinerary) error {
	c.ErrorMessage = ""
	code = strings.ToUpper(strings.TrimSpace(code))

	if code == "" {
		c.ErrorMessage = "Please select a coupon"
		return errors.Mark(errors.New(c.ErrorMessage), ErrCouponRejected)
	}

	domestic := IsDomestic(it)
	switch {
	case code == CouponDomestic && domestic:
		c.Code = code
		c.Applied = true
		c.DiscountRate = domesticDiscount
		return nil
	case code == CouponInternational && !domestic:
		c.Code = code
		c.Applied = true
		c.DiscountRate = internationalDiscount
		return nil
	case code == CouponDomestic:
		return c.reject(code, "This coupon is only valid for domestic flights")
	case code == CouponInternational:
		return c.reject(code, "This coupon is only valid for international flights")
	default:
		return c.reject(code, "Invalid coupon code")
	}
}

func (c *CouponState) reject(code, reason string) error {
	c.Code = code
	c.Applied = false
	c.DiscountRate = 0
	c.ErrorMessage = reason
	return errors.Mark(errors.New(reason), ErrCouponRejected)
}

// Remove clears the coupon unconditionally. It never fails.
func (c *CouponState) Remove() {
	*c = CouponState{}
}

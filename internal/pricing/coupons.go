package pricing

import (
	"fmt"
	"strings"
)

// CouponDetails is a catalog entry. Immutable reference data.
type CouponDetails struct {
	Code          string `json:"code"`
	MinTravellers int    `json:"min_travellers"`
	Discount      int64  `json:"discount"`
}

// Hint renders the entry the way the coupon input suggests it
func (c CouponDetails) Hint() string {
	return fmt.Sprintf("%s (min %d travellers)", c.Code, c.MinTravellers)
}

// CouponResult is the outcome of checking a code against a traveller count
type CouponResult struct {
	Valid    bool   `json:"valid"`
	Discount int64  `json:"discount"`
	Message  string `json:"message"`
}

const MsgInvalidCoupon = "Invalid coupon code"

var coupons = []CouponDetails{
	{Code: "NEW10", MinTravellers: 2, Discount: 100},
	{Code: "NEW20", MinTravellers: 4, Discount: 200},
}

// Catalog returns a copy of the coupon catalog
func Catalog() []CouponDetails {
	out := make([]CouponDetails, len(coupons))
	copy(out, coupons)
	return out
}

// LookupCoupon finds a coupon ignoring case and surrounding whitespace
func LookupCoupon(code string) (CouponDetails, bool) {
	code = strings.TrimSpace(code)
	for _, c := range coupons {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return CouponDetails{}, false
}

// ValidateCoupon checks whether code is applicable to the given traveller count
func ValidateCoupon(code string, travellers int) CouponResult {
	coupon, ok := LookupCoupon(code)
	if !ok {
		return CouponResult{Valid: false, Discount: 0, Message: MsgInvalidCoupon}
	}

	if travellers < coupon.MinTravellers {
		return CouponResult{
			Valid:    false,
			Discount: 0,
			Message:  fmt.Sprintf("Minimum %d travellers required for this coupon", coupon.MinTravellers),
		}
	}

	return CouponResult{
		Valid:    true,
		Discount: coupon.Discount,
		Message:  fmt.Sprintf("%s discount applied!", FormatINR(coupon.Discount)),
	}
}

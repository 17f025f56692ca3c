package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_ZeroTravellers(t *testing.T) {
	assert.Equal(t, Summary{}, Calculate(0, 0))
}

func TestCalculate_MatchesFormula(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for _, d := range []int64{0, 50, 100, 200, 1000, 50000} {
			got := Calculate(n, d)

			want := int64(n)*1000 + int64(n)*180 + int64(n)*100 - d
			if want < 0 {
				want = 0
			}
			assert.Equalf(t, want, got.FinalAmount, "n=%d d=%d", n, d)
			assert.Equal(t, n, got.NumberOfTravellers)
			assert.Equal(t, d, got.Discount)
		}
	}
}

func TestCalculate_Breakdown(t *testing.T) {
	got := Calculate(2, 100)

	assert.Equal(t, int64(2000), got.TicketTotal)
	assert.Equal(t, int64(360), got.GSTAmount)
	assert.Equal(t, int64(200), got.LifeJacketTotal)
	assert.Equal(t, int64(100), got.Discount)
	assert.Equal(t, int64(2460), got.FinalAmount)
}

func TestCalculate_DiscountLargerThanTotal(t *testing.T) {
	got := Calculate(1, 5000)
	assert.Equal(t, int64(0), got.FinalAmount)
}

func TestCalculate_NegativeCountClamped(t *testing.T) {
	assert.Equal(t, Summary{}, Calculate(-3, 0))
}

func TestValidateCoupon(t *testing.T) {
	tests := []struct {
		description  string
		code         string
		travellers   int
		wantValid    bool
		wantDiscount int64
		wantMessage  string
	}{
		{"NEW10 one traveller", "NEW10", 1, false, 0, "Minimum 2 travellers required for this coupon"},
		{"NEW10 two travellers", "NEW10", 2, true, 100, "₹100 discount applied!"},
		{"new10 lower case", "new10", 2, true, 100, "₹100 discount applied!"},
		{"new10 lower case one traveller", "new10", 1, false, 0, "Minimum 2 travellers required for this coupon"},
		{"NEW20 three travellers", "NEW20", 3, false, 0, "Minimum 4 travellers required for this coupon"},
		{"NEW20 four travellers", "NEW20", 4, true, 200, "₹200 discount applied!"},
		{"padded code", "  New20 ", 5, true, 200, "₹200 discount applied!"},
		{"unknown code", "FREE", 10, false, 0, MsgInvalidCoupon},
		{"empty code", "", 10, false, 0, MsgInvalidCoupon},
	}

	for _, test := range tests {
		got := ValidateCoupon(test.code, test.travellers)
		assert.Equalf(t, test.wantValid, got.Valid, test.description)
		assert.Equalf(t, test.wantDiscount, got.Discount, test.description)
		assert.Equalf(t, test.wantMessage, got.Message, test.description)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Discount = 9999

	coupon, ok := LookupCoupon("NEW10")
	assert.True(t, ok)
	assert.Equal(t, int64(100), coupon.Discount)
	assert.Equal(t, "NEW10 (min 2 travellers)", coupon.Hint())
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0", FormatINR(0))
	assert.Equal(t, "₹100", FormatINR(100))
	assert.Equal(t, "₹2,360", FormatINR(2360))
	assert.Equal(t, "-₹100", FormatINR(-100))
}

package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const RupeeSymbol = "₹"

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a whole-rupee amount with Indian digit grouping, e.g. ₹2,360
func FormatINR(amount int64) string {
	if amount < 0 {
		return "-" + RupeeSymbol + inrPrinter.Sprintf("%d", -amount)
	}
	return RupeeSymbol + inrPrinter.Sprintf("%d", amount)
}

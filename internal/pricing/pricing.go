// Package pricing computes the price breakdown of a trip booking and checks
// coupon codes against the static coupon catalog.
package pricing

// Details holds the fixed per-person prices and the GST rate
type Details struct {
	TicketCostPerPerson     int64 `json:"ticket_cost_per_person"`
	LifeJacketCostPerPerson int64 `json:"life_jacket_cost_per_person"`
	GSTPercentage           int64 `json:"gst_percentage"`
}

// Pricing is the price list used for every booking. Not user-modifiable.
var Pricing = Details{
	TicketCostPerPerson:     1000,
	LifeJacketCostPerPerson: 100,
	GSTPercentage:           18,
}

// Summary is the derived price breakdown for a traveller count and discount.
// Amounts are whole rupees.
type Summary struct {
	NumberOfTravellers int   `json:"number_of_travellers"`
	TicketTotal        int64 `json:"ticket_total"`
	GSTAmount          int64 `json:"gst_amount"`
	LifeJacketTotal    int64 `json:"life_jacket_total"`
	Discount           int64 `json:"discount"`
	FinalAmount        int64 `json:"final_amount"`
}

// Calculate builds the price summary. FinalAmount never drops below zero.
func Calculate(travellers int, discount int64) Summary {
	if travellers < 0 {
		travellers = 0
	}
	count := int64(travellers)

	ticketTotal := count * Pricing.TicketCostPerPerson
	gstAmount := ticketTotal * Pricing.GSTPercentage / 100
	lifeJacketTotal := count * Pricing.LifeJacketCostPerPerson

	subtotal := ticketTotal + gstAmount + lifeJacketTotal
	finalAmount := subtotal - discount
	if finalAmount < 0 {
		finalAmount = 0
	}

	return Summary{
		NumberOfTravellers: travellers,
		TicketTotal:        ticketTotal,
		GSTAmount:          gstAmount,
		LifeJacketTotal:    lifeJacketTotal,
		Discount:           discount,
		FinalAmount:        finalAmount,
	}
}

package dto

// FormattedPriceSummary holds the INR display strings, e.g. "₹2,360"
type FormattedPriceSummary struct {
	TicketTotal     string `json:"ticket_total"`
	GSTAmount       string `json:"gst_amount"`
	LifeJacketTotal string `json:"life_jacket_total"`
	Discount        string `json:"discount"`
	FinalAmount     string `json:"final_amount"`
}

// PriceSummaryResponse is the price breakdown in whole rupees
type PriceSummaryResponse struct {
	NumberOfTravellers int                   `json:"number_of_travellers"`
	TicketTotal        int64                 `json:"ticket_total"`
	GSTAmount          int64                 `json:"gst_amount"`
	LifeJacketTotal    int64                 `json:"life_jacket_total"`
	Discount           int64                 `json:"discount"`
	FinalAmount        int64                 `json:"final_amount"`
	Formatted          FormattedPriceSummary `json:"formatted"`
}

// PricingDetailsResponse is the fixed price list
type PricingDetailsResponse struct {
	TicketCostPerPerson     int64 `json:"ticket_cost_per_person"`
	LifeJacketCostPerPerson int64 `json:"life_jacket_cost_per_person"`
	GSTPercentage           int64 `json:"gst_percentage"`
}

// QuoteResponse is returned by the price quote endpoint
type QuoteResponse struct {
	Pricing PricingDetailsResponse `json:"pricing"`
	Summary PriceSummaryResponse   `json:"summary"`
}

// CouponItem is a coupon catalog entry
type CouponItem struct {
	Code          string `json:"code"`
	MinTravellers int    `json:"min_travellers"`
	Discount      int64  `json:"discount"`
	Hint          string `json:"hint"`
}

// CouponListResponse lists the available coupons with the input hint
type CouponListResponse struct {
	Coupons []CouponItem `json:"coupons"`
	Hint    string       `json:"hint"`
}

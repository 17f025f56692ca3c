package dto

// TravellerErrorsResponse carries the inline field errors of a traveller
type TravellerErrorsResponse struct {
	Name          string `json:"name,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Thumbprint    string `json:"thumbprint,omitempty"`
}

// TravellerResponse represents a traveller in responses
type TravellerResponse struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	ContactNumber      string                  `json:"contact_number"`
	ThumbprintCaptured bool                    `json:"thumbprint_captured"`
	CaptureState       string                  `json:"capture_state"` // idle | capturing | captured
	Errors             TravellerErrorsResponse `json:"errors"`
}

// SessionResponse is the full checkout form state with its derived flags
type SessionResponse struct {
	ID            string               `json:"id"`
	Travellers    []TravellerResponse  `json:"travellers"`
	TravelDate    *string              `json:"travel_date"` // YYYY-MM-DD, null when not selected
	MinTravelDate string               `json:"min_travel_date"`
	DateError     string               `json:"date_error,omitempty"`
	AppliedCoupon *string              `json:"applied_coupon"`
	CouponError   string               `json:"coupon_error,omitempty"`
	Summary       PriceSummaryResponse `json:"summary"`
	State         string               `json:"state"` // idle | submitting

	AllThumbprintsCaptured bool `json:"all_thumbprints_captured"`
	IsFormValid            bool `json:"is_form_valid"`
	CanSubmit              bool `json:"can_submit"`
	CanRemoveTraveller     bool `json:"can_remove_traveller"`
	IsSubmitting           bool `json:"is_submitting"`
}

// CreateSessionResponse is returned when a checkout session starts
type CreateSessionResponse struct {
	Session   SessionResponse `json:"session"`
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expires_at"`
}

// AddTravellerResponse returns the new traveller with the updated session
type AddTravellerResponse struct {
	Traveller TravellerResponse `json:"traveller"`
	Session   SessionResponse   `json:"session"`
}

// UpdateTravellerRequest holds the traveller fields to change.
// Only provided fields are updated.
type UpdateTravellerRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"` // non-digits are stripped, truncated to 10
}

// SetTravelDateRequest selects a travel date, or clears it with null
type SetTravelDateRequest struct {
	TravelDate *string `json:"travel_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
}

// ApplyCouponRequest carries the coupon code typed by the user
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// ApplyCouponResponse reports whether the coupon was applied
type ApplyCouponResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	Session SessionResponse `json:"session"`
}

// ValidateResponse reports the result of validating the whole form
type ValidateResponse struct {
	Valid   bool            `json:"valid"`
	Session SessionResponse `json:"session"`
}

package checkout

import "errors"

var (
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrTravellerNotFound    = errors.New("traveller not found")
	ErrLastTraveller        = errors.New("at least one traveller is required")
	ErrRosterFull           = errors.New("maximum number of travellers reached")
	ErrDateInPast           = errors.New("travel date cannot be in the past")
	ErrCouponCodeRequired   = errors.New("coupon code is required")
	ErrValidationFailed     = errors.New("please fill in all required fields correctly")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrSessionClosed        = errors.New("checkout session closed")
)

// Inline error messages shown next to the offending field
const (
	MsgNameRequired       = "Name is required"
	MsgNameTooShort       = "Name must be at least 2 characters"
	MsgContactRequired    = "Contact number is required"
	MsgContactLength      = "Contact number must be 10 digits"
	MsgThumbprintRequired = "Thumbprint verification is required"
	MsgDateRequired       = "Please select a travel date"
)

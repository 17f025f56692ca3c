package models

import "github.com/google/uuid"

// Traveller is one passenger on a checkout session
type Traveller struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	ContactNumber      string    `json:"contact_number"`
	ThumbprintCaptured bool      `json:"thumbprint_captured"`
}

// NewTraveller returns an empty traveller with a fresh identifier
func NewTraveller() Traveller {
	return Traveller{ID: uuid.New()}
}

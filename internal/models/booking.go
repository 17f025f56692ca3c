package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the record written once a simulated payment is confirmed
type Booking struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	SessionID       uuid.UUID   `json:"session_id" db:"session_id"`
	TravelDate      time.Time   `json:"travel_date" db:"travel_date"`
	Travellers      []Traveller `json:"travellers"`
	CouponCode      string      `json:"coupon_code" db:"coupon_code"`
	TicketTotal     int64       `json:"ticket_total" db:"ticket_total"`
	GSTAmount       int64       `json:"gst_amount" db:"gst_amount"`
	LifeJacketTotal int64       `json:"life_jacket_total" db:"life_jacket_total"`
	Discount        int64       `json:"discount" db:"discount"`
	FinalAmount     int64       `json:"final_amount" db:"final_amount"`
	ConfirmedAt     time.Time   `json:"confirmed_at" db:"confirmed_at"`
}

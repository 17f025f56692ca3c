package checkout

import (
	"time"

	"github.com/google/uuid"

	"BOAT_CHECKOUT_BACK-END/internal/models"
	"BOAT_CHECKOUT_BACK-END/internal/pricing"
	"BOAT_CHECKOUT_BACK-END/internal/roster"
)

// TravellerView is a traveller as the form renders it
type TravellerView struct {
	models.Traveller
	Capture roster.CaptureState `json:"capture_state"`
	Errors  roster.FieldErrors  `json:"errors"`
}

// Snapshot is a consistent read of the session with its derived flags
type Snapshot struct {
	ID            uuid.UUID
	Travellers    []TravellerView
	TravelDate    *time.Time
	MinTravelDate time.Time
	DateError     string
	AppliedCoupon string
	CouponError   string
	Summary       pricing.Summary
	State         SubmissionState

	AllThumbprintsCaptured bool
	IsFormValid            bool
	CanSubmit              bool
	CanRemoveTraveller     bool
	Submitting             bool
}

// Snapshot derives the flags from the current state on every call
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	travellers := s.roster.List()
	views := make([]TravellerView, 0, len(travellers))
	for _, t := range travellers {
		capture, _ := s.roster.CaptureState(t.ID)
		views = append(views, TravellerView{
			Traveller: t,
			Capture:   capture,
			Errors:    s.roster.Errors(t.ID),
		})
	}

	var date *time.Time
	if s.travelDate != nil {
		d := *s.travelDate
		date = &d
	}

	allCaptured := s.roster.AllCaptured()
	formValid := allCaptured && s.travelDate != nil
	submitting := s.state == StateSubmitting

	return Snapshot{
		ID:            s.id,
		Travellers:    views,
		TravelDate:    date,
		MinTravelDate: s.MinTravelDate(),
		DateError:     s.dateError,
		AppliedCoupon: s.appliedCoupon,
		CouponError:   s.couponError,
		Summary:       pricing.Calculate(len(travellers), s.discount),
		State:         s.state,

		AllThumbprintsCaptured: allCaptured,
		IsFormValid:            formValid,
		CanSubmit:              formValid && !submitting && allCaptured,
		CanRemoveTraveller:     len(travellers) > 1,
		Submitting:             submitting,
	}
}

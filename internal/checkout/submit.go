package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"BOAT_CHECKOUT_BACK-END/internal/models"
	"BOAT_CHECKOUT_BACK-END/internal/pricing"
)

const confirmationDateLayout = "02/01/2006"

// Submit validates the form and, when it passes, starts the simulated
// payment. Confirmation happens after the submit delay: the booking is
// recorded, the session resets and a confirmation notice is published.
// Once validation passes the submission cannot fail.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.touch()

	if s.state == StateSubmitting {
		return ErrSubmissionInProgress
	}

	s.state = StateValidating
	if !s.validateLocked() {
		s.state = StateRejected
		s.publish("Validation Error", "Please fill in all required fields correctly", SeverityDestructive)
		s.log.Info("submission rejected by validation")
		s.state = StateIdle
		return ErrValidationFailed
	}

	s.state = StateSubmitting
	s.pendingBooking = s.bookingLocked()
	s.submitCancel = s.opts.Scheduler.AfterFunc(s.opts.SubmitDelay, s.confirm)
	s.log.Info("submission started",
		zap.Int("travellers", len(s.pendingBooking.Travellers)),
		zap.Int64("final_amount", s.pendingBooking.FinalAmount))
	return nil
}

func (s *Session) confirm() {
	s.mu.Lock()
	if s.closed || s.state != StateSubmitting {
		s.mu.Unlock()
		return
	}

	s.state = StateConfirmed
	booking := s.pendingBooking
	booking.ConfirmedAt = s.opts.Now()
	message := fmt.Sprintf("Your adventure for %d traveller(s) on %s is booked!",
		len(booking.Travellers), booking.TravelDate.Format(confirmationDateLayout))

	s.resetLocked()
	s.publish("Booking Confirmed! 🎉", message, SeveritySuccess)
	s.log.Info("booking confirmed", zap.String("booking_id", booking.ID.String()))
	recorder := s.opts.Recorder
	s.mu.Unlock()

	if recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := recorder.RecordBooking(ctx, booking); err != nil {
		s.log.Error("failed to record booking", zap.String("booking_id", booking.ID.String()), zap.Error(err))
	}
}

func (s *Session) bookingLocked() models.Booking {
	travellers := s.roster.List()
	summary := pricing.Calculate(len(travellers), s.discount)

	b := models.Booking{
		ID:              uuid.New(),
		SessionID:       s.id,
		Travellers:      travellers,
		CouponCode:      s.appliedCoupon,
		TicketTotal:     summary.TicketTotal,
		GSTAmount:       summary.GSTAmount,
		LifeJacketTotal: summary.LifeJacketTotal,
		Discount:        summary.Discount,
		FinalAmount:     summary.FinalAmount,
	}
	if s.travelDate != nil {
		b.TravelDate = *s.travelDate
	}
	return b
}

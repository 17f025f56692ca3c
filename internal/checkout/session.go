// Package checkout implements the checkout form controller: it owns the
// traveller roster, travel date, coupon and submission lifecycle of one
// booking session and derives what the client may do next.
package checkout

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"BOAT_CHECKOUT_BACK-END/internal/models"
	"BOAT_CHECKOUT_BACK-END/internal/pricing"
	"BOAT_CHECKOUT_BACK-END/internal/roster"
)

// Session is one checkout form. All user actions and timer callbacks take
// the session lock, so timer updates never interleave with edits.
type Session struct {
	mu   sync.Mutex
	id   uuid.UUID
	opts Options
	log  *zap.Logger

	roster        *roster.Roster
	travelDate    *time.Time
	dateError     string
	appliedCoupon string
	discount      int64
	couponError   string

	state          SubmissionState
	submitCancel   Cancel
	pendingBooking models.Booking

	notices    *noticeFeed
	lastActive time.Time
	closed     bool
}

// NewSession creates a session holding one empty traveller
func NewSession(id uuid.UUID, opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		id:      id,
		opts:    opts,
		log:     opts.Logger.With(zap.String("session_id", id.String())),
		notices: newNoticeFeed(opts.NoticeFeedSize),
	}
	s.resetLocked()
	s.lastActive = opts.Now()
	return s
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// LastActive returns when the session was last touched by a client action
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateSubmitting && s.lastActive.Before(cutoff)
}

// AddTraveller appends an empty traveller
func (s *Session) AddTraveller() (models.Traveller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Traveller{}, ErrSessionClosed
	}
	s.touch()

	if s.opts.MaxTravellers > 0 && s.roster.Len() >= s.opts.MaxTravellers {
		return models.Traveller{}, ErrRosterFull
	}

	t := s.roster.Add()
	s.log.Debug("traveller added", zap.String("traveller_id", t.ID.String()), zap.Int("travellers", s.roster.Len()))
	return t, nil
}

// UpdateTraveller merges patch into a traveller. The roster clears the
// errors of exactly the fields being updated.
func (s *Session) UpdateTraveller(id uuid.UUID, patch roster.Patch) (models.Traveller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Traveller{}, ErrSessionClosed
	}
	s.touch()

	if !s.roster.Update(id, patch) {
		return models.Traveller{}, ErrTravellerNotFound
	}
	t, _ := s.roster.Get(id)
	return t, nil
}

// RemoveTraveller deletes a traveller. The last traveller cannot be removed.
// An applied coupon that the smaller roster no longer qualifies for is
// dropped and a notice explains why.
func (s *Session) RemoveTraveller(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.touch()

	if _, ok := s.roster.Get(id); !ok {
		return ErrTravellerNotFound
	}
	if s.roster.Len() <= 1 {
		return ErrLastTraveller
	}

	s.roster.Remove(id)
	s.log.Debug("traveller removed", zap.String("traveller_id", id.String()), zap.Int("travellers", s.roster.Len()))

	s.revalidateCouponLocked()
	return nil
}

// CaptureThumbprint starts the simulated capture for a traveller. It is a
// no-op while a capture is running or once the thumbprint is captured.
func (s *Session) CaptureThumbprint(id uuid.UUID) (roster.CaptureState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSessionClosed
	}
	s.touch()

	state, ok := s.roster.CaptureState(id)
	if !ok {
		return "", ErrTravellerNotFound
	}
	if state != roster.CaptureIdle {
		return state, nil
	}

	cancel := s.opts.Scheduler.AfterFunc(s.opts.CaptureDelay, func() { s.completeCapture(id) })
	s.roster.BeginCapture(id, cancel)
	s.log.Debug("thumbprint capture started", zap.String("traveller_id", id.String()))
	return roster.CaptureCapturing, nil
}

func (s *Session) completeCapture(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if !s.roster.CompleteCapture(id) {
		s.log.Debug("stale thumbprint capture discarded", zap.String("traveller_id", id.String()))
		return
	}
	s.log.Debug("thumbprint captured", zap.String("traveller_id", id.String()))
}

// MinTravelDate is the earliest selectable travel date: today
func (s *Session) MinTravelDate() time.Time {
	return dateOnly(s.opts.Now().UTC())
}

// SetTravelDate selects a travel date, or clears it when date is nil.
// Dates before today are rejected.
func (s *Session) SetTravelDate(date *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.touch()

	if date == nil {
		s.travelDate = nil
		s.dateError = ""
		return nil
	}

	d := dateOnly(*date)
	if d.Before(s.MinTravelDate()) {
		return ErrDateInPast
	}
	s.travelDate = &d
	s.dateError = ""
	return nil
}

// CouponOutcome is returned to the coupon input after applying a code
type CouponOutcome struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ApplyCoupon checks code against the current traveller count. On success the
// coupon and discount are applied; on failure the coupon error is set and any
// previously applied coupon is kept.
func (s *Session) ApplyCoupon(code string) (CouponOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return CouponOutcome{}, ErrSessionClosed
	}
	s.touch()

	if strings.TrimSpace(code) == "" {
		return CouponOutcome{}, ErrCouponCodeRequired
	}

	result := pricing.ValidateCoupon(code, s.roster.Len())
	if !result.Valid {
		s.couponError = result.Message
		s.log.Debug("coupon rejected", zap.String("code", code), zap.String("reason", result.Message))
		return CouponOutcome{Valid: false, Message: result.Message}, nil
	}

	coupon, _ := pricing.LookupCoupon(code)
	s.appliedCoupon = coupon.Code
	s.discount = result.Discount
	s.couponError = ""
	s.log.Info("coupon applied", zap.String("code", coupon.Code), zap.Int64("discount", result.Discount))
	return CouponOutcome{Valid: true, Message: result.Message}, nil
}

// RemoveCoupon clears the applied coupon, the discount and the coupon error
func (s *Session) RemoveCoupon() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.touch()

	s.appliedCoupon = ""
	s.discount = 0
	s.couponError = ""
	return nil
}

// DrainNotices returns and forgets the pending notices
func (s *Session) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notices.drain()
}

// Close cancels every pending timer. Later calls fail with ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.roster.CancelCaptures()
	if s.submitCancel != nil {
		s.submitCancel()
		s.submitCancel = nil
	}
}

func (s *Session) revalidateCouponLocked() {
	if s.appliedCoupon == "" {
		return
	}
	result := pricing.ValidateCoupon(s.appliedCoupon, s.roster.Len())
	if result.Valid {
		return
	}

	s.log.Info("coupon removed after roster change", zap.String("code", s.appliedCoupon), zap.Int("travellers", s.roster.Len()))
	s.appliedCoupon = ""
	s.discount = 0
	s.publish("Coupon Removed", result.Message, SeverityDestructive)
}

func (s *Session) publish(title, description string, severity Severity) {
	s.notices.push(Notice{
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   s.opts.Now(),
	})
}

// resetLocked puts the session back to its initial state
func (s *Session) resetLocked() {
	if s.roster != nil {
		s.roster.CancelCaptures()
	}
	s.roster = roster.New()
	s.roster.Add()
	s.travelDate = nil
	s.dateError = ""
	s.appliedCoupon = ""
	s.discount = 0
	s.couponError = ""
	s.state = StateIdle
	s.submitCancel = nil
	s.pendingBooking = models.Booking{}
}

func (s *Session) touch() {
	s.lastActive = s.opts.Now()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

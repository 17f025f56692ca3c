// Package store records confirmed bookings.
package store

import (
	"context"
	"sync"

	"BOAT_CHECKOUT_BACK-END/internal/models"
)

// MemoryBookingStore keeps confirmed bookings in process memory. It is used
// when no database is configured.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingStore creates an empty store
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{}
}

// RecordBooking appends a copy of booking
func (s *MemoryBookingStore) RecordBooking(ctx context.Context, booking models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	booking.Travellers = append([]models.Traveller(nil), booking.Travellers...)

	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()
	return nil
}

// List returns the recorded bookings, oldest first
func (s *MemoryBookingStore) List() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL,
    travel_date DATE NOT NULL,
    coupon_code TEXT,
    ticket_total BIGINT NOT NULL,
    gst_amount BIGINT NOT NULL,
    life_jacket_total BIGINT NOT NULL,
    discount BIGINT NOT NULL DEFAULT 0,
    final_amount BIGINT NOT NULL,
    confirmed_at TIMESTAMPTZ NOT NULL
);`

const createBookingTravellersTableSQL = `
CREATE TABLE IF NOT EXISTS booking_travellers (
    booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    traveller_id UUID NOT NULL,
    name TEXT NOT NULL,
    contact_number VARCHAR(10) NOT NULL,
    thumbprint_captured BOOLEAN NOT NULL,
    PRIMARY KEY (booking_id, position)
);`

// EnsureSchema creates the booking tables when they do not exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createBookingsTableSQL); err != nil {
		return fmt.Errorf("error running bookings table migration: %w", err)
	}
	if _, err := pool.Exec(ctx, createBookingTravellersTableSQL); err != nil {
		return fmt.Errorf("error running booking_travellers table migration: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"BOAT_CHECKOUT_BACK-END/internal/models"
)

// PostgresBookingStore writes confirmed bookings to Postgres
type PostgresBookingStore struct {
	db *pgxpool.Pool
}

// NewPostgresBookingStore creates a store on an open pool
func NewPostgresBookingStore(db *pgxpool.Pool) *PostgresBookingStore {
	return &PostgresBookingStore{db: db}
}

// RecordBooking inserts the booking and its travellers in one transaction
func (s *PostgresBookingStore) RecordBooking(ctx context.Context, booking models.Booking) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO bookings (id, session_id, travel_date, coupon_code, ticket_total, gst_amount, life_jacket_total, discount, final_amount, confirmed_at)
             VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)`,
			booking.ID, booking.SessionID, booking.TravelDate, booking.CouponCode,
			booking.TicketTotal, booking.GSTAmount, booking.LifeJacketTotal, booking.Discount, booking.FinalAmount,
			booking.ConfirmedAt,
		)
		if err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		batch := &pgx.Batch{}
		for i, t := range booking.Travellers {
			batch.Queue(
				`INSERT INTO booking_travellers (booking_id, position, traveller_id, name, contact_number, thumbprint_captured)
                 VALUES ($1, $2, $3, $4, $5, $6)`,
				booking.ID, i, t.ID, t.Name, t.ContactNumber, t.ThumbprintCaptured,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert booking travellers: %w", err)
		}
		return nil
	})
}

package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	"BOAT_CHECKOUT_BACK-END/internal/models"
)

const (
	DefaultCaptureDelay   = 1500 * time.Millisecond
	DefaultSubmitDelay    = 2000 * time.Millisecond
	DefaultNoticeFeedSize = 20
	recordTimeout         = 5 * time.Second
)

// BookingRecorder receives every confirmed booking
type BookingRecorder interface {
	RecordBooking(ctx context.Context, booking models.Booking) error
}

// Options configures a checkout session. Zero values fall back to defaults.
type Options struct {
	CaptureDelay   time.Duration
	SubmitDelay    time.Duration
	MaxTravellers  int // 0 means unbounded
	NoticeFeedSize int
	Scheduler      Scheduler
	Recorder       BookingRecorder
	Now            func() time.Time
	Logger         *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.CaptureDelay <= 0 {
		o.CaptureDelay = DefaultCaptureDelay
	}
	if o.SubmitDelay <= 0 {
		o.SubmitDelay = DefaultSubmitDelay
	}
	if o.NoticeFeedSize <= 0 {
		o.NoticeFeedSize = DefaultNoticeFeedSize
	}
	if o.Scheduler == nil {
		o.Scheduler = TimerScheduler
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

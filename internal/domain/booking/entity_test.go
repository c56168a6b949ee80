//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirm(t *testing.T) {
	vendor := uuid.New()
	now := time.Now()

	t.Run("pending booking is confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		changed, err := b.Confirm(vendor, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		require.NotNil(t, b.ConfirmedBy())
		assert.Equal(t, vendor, *b.ConfirmedBy())
		require.NotNil(t, b.ConfirmedAt())
		assert.Equal(t, now, *b.ConfirmedAt())
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		_, err := b.Confirm(vendor, now)
		require.NoError(t, err)

		other := uuid.New()
		changed, err := b.Confirm(other, now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		// First confirmation wins.
		assert.Equal(t, vendor, *b.ConfirmedBy())
	})

	t.Run("terminal states cannot be confirmed", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()

			changed, err := b.Confirm(vendor, now)
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.False(t, changed)
		}
	})
}

func TestBookingReject(t *testing.T) {
	vendor := uuid.New()
	now := time.Now()
	reason := "venue under renovation"

	t.Run("pending booking is rejected with reason", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, b.Reject(vendor, now, &reason))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, reason, *b.CancellationReason())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, vendor, *b.CancelledBy())
	})

	t.Run("confirmed booking can still be rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		require.NoError(t, b.Reject(vendor, now, nil))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Nil(t, b.CancellationReason())
	})

	t.Run("terminal booking cannot be rejected", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			assert.ErrorIs(t, b.Reject(vendor, now, nil), errs.ErrInvalidStateTransition)
		}
	})
}

func TestBookingCancel(t *testing.T) {
	customer := uuid.New()
	now := time.Now()

	t.Run("pending booking is cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, b.Cancel(customer, now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("confirmed booking is cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		require.NoError(t, b.Cancel(customer, now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("double cancel is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()
		assert.ErrorIs(t, b.Cancel(customer, now), errs.ErrInvalidStateTransition)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		assert.ErrorIs(t, b.Cancel(customer, now), errs.ErrInvalidStateTransition)
	})
}

func TestBookingComplete(t *testing.T) {
	now := time.Now()

	t.Run("confirmed booking is completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		require.NoError(t, b.Complete(now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		require.NotNil(t, b.CompletedAt())
		assert.Equal(t, now, *b.CompletedAt())
	})

	t.Run("only confirmed bookings can be completed", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusPending, booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			assert.ErrorIs(t, b.Complete(now), errs.ErrInvalidStateTransition)
		}
	})
}

func TestBookingSoftDelete(t *testing.T) {
	now := time.Now()

	t.Run("cancelled booking is deleted", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()

		require.NoError(t, b.SoftDelete(now))
		assert.True(t, b.IsDeleted())
	})

	t.Run("completed booking is kept for the record", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()

		assert.ErrorIs(t, b.SoftDelete(now), errs.ErrInvalidStateTransition)
		assert.False(t, b.IsDeleted())
	})
}

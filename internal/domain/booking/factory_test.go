//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCodes struct{ suffix string }

func (f fixedCodes) Suffix() string { return f.suffix }

func newTestFactory(t *testing.T) *booking.Factory {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	return booking.NewFactory(clk, fixedCodes{suffix: "A1B2"})
}

func baseParams(t *testing.T) booking.NewBookingParams {
	t.Helper()
	slot, err := booking.SlotFromIndex(0)
	require.NoError(t, err)

	contact, err := booking.NewCustomerContact("Nguyen Van A", "+84901234567", nil)
	require.NoError(t, err)

	return booking.NewBookingParams{
		UserID:      uuid.New(),
		Venue:       builder.NewVenueBuilder().WithPrice(500_000).WithCapacity(200).BuildDomain(),
		Contact:     contact,
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Slot:        slot,
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestFactoryNewBooking(t *testing.T) {
	t.Run("defaults when only required fields are given", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)

		b, err := f.NewBooking(p)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		// The code carries the creation date, not the booking date.
		assert.Equal(t, "BK-20260801-A1B2", b.Code())
		assert.Equal(t, 1, b.GuestCount())
		// Unit price falls back to the venue's listed price.
		assert.Equal(t, int64(500_000), b.UnitPrice().Amount())
		assert.Equal(t, int64(500_000), b.TotalAmount().Amount())
		assert.Equal(t, int64(0), b.DiscountAmount().Amount())
		assert.Equal(t, int64(500_000), b.FinalAmount().Amount())
		assert.Nil(t, b.DepositAmount())
	})

	t.Run("total is unit price times guests", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)
		p.GuestCount = intPtr(100)
		p.UnitPrice = int64Ptr(300_000)
		p.DiscountAmount = int64Ptr(1_000_000)
		p.DepositAmount = int64Ptr(5_000_000)

		b, err := f.NewBooking(p)
		require.NoError(t, err)

		assert.Equal(t, int64(300_000), b.UnitPrice().Amount())
		assert.Equal(t, int64(30_000_000), b.TotalAmount().Amount())
		assert.Equal(t, int64(29_000_000), b.FinalAmount().Amount())
		require.NotNil(t, b.DepositAmount())
		assert.Equal(t, int64(5_000_000), b.DepositAmount().Amount())
	})

	t.Run("discount larger than the total is rejected", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)
		p.UnitPrice = int64Ptr(100_000)
		p.DiscountAmount = int64Ptr(500_000)

		_, err := f.NewBooking(p)
		assert.ErrorIs(t, err, errs.ErrInvalidDiscount)
	})

	t.Run("discount equal to the total yields a zero final amount", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)
		p.UnitPrice = int64Ptr(100_000)
		p.DiscountAmount = int64Ptr(100_000)

		b, err := f.NewBooking(p)
		require.NoError(t, err)
		assert.Equal(t, int64(0), b.FinalAmount().Amount())
	})

	t.Run("zero venue price without explicit price is rejected", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)
		p.Venue = builder.NewVenueBuilder().WithPrice(0).BuildDomain()

		_, err := f.NewBooking(p)
		assert.ErrorIs(t, err, errs.ErrInvalidUnitPrice)
	})

	t.Run("capacity is checked only when a guest count is supplied", func(t *testing.T) {
		f := newTestFactory(t)

		p := baseParams(t)
		p.Venue = builder.NewVenueBuilder().WithPrice(500_000).WithCapacity(50).BuildDomain()
		p.GuestCount = intPtr(51)
		_, err := f.NewBooking(p)
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)

		// No guest count: capacity is not enforced, 1 guest assumed.
		p.GuestCount = nil
		b, err := f.NewBooking(p)
		require.NoError(t, err)
		assert.Equal(t, 1, b.GuestCount())
	})

	t.Run("zero capacity means unlimited", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)
		p.Venue = builder.NewVenueBuilder().WithPrice(500_000).WithCapacity(0).BuildDomain()
		p.GuestCount = intPtr(10_000)

		b, err := f.NewBooking(p)
		require.NoError(t, err)
		assert.Equal(t, 10_000, b.GuestCount())
	})

	t.Run("vendor and venue come from the venue aggregate", func(t *testing.T) {
		f := newTestFactory(t)
		p := baseParams(t)

		b, err := f.NewBooking(p)
		require.NoError(t, err)

		assert.Equal(t, p.Venue.ID(), b.VenueID())
		assert.Equal(t, p.Venue.VendorID(), b.VendorID())
		assert.Equal(t, p.UserID, b.UserID())
	})
}

func TestRandomCodeGenerator(t *testing.T) {
	gen := booking.NewRandomCodeGenerator()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		suffix := gen.Suffix()
		assert.Len(t, suffix, 4)
		for _, r := range suffix {
			assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "unexpected rune %q", r)
		}
		seen[suffix] = true
	}
	// Not a strict uniqueness guarantee, but 50 draws from 36^4
	// collapsing to one value would mean a broken generator.
	assert.Greater(t, len(seen), 1)
}

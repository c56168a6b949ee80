//go:build unit

package request_test

import (
	"testing"
	"time"

	"venue-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestCreateBookingRequestToParams(t *testing.T) {
	t.Run("booking_date wins over booking_date_time", func(t *testing.T) {
		dt := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
		req := request.CreateBookingRequest{
			BookingDate:     strPtr("2026-09-01"),
			BookingDateTime: &dt,
		}

		p, err := req.ToParams()
		require.NoError(t, err)
		require.NotNil(t, p.BookingDate)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *p.BookingDate)
		assert.Nil(t, p.StartTime)
	})

	t.Run("date-time supplies both date and start time from the same instant", func(t *testing.T) {
		// 02:00 at +07:00 is 19:00 the previous day in UTC; both fields
		// must agree on which day that is.
		loc := time.FixedZone("ICT", 7*3600)
		dt := time.Date(2026, 9, 1, 2, 0, 0, 0, loc)
		req := request.CreateBookingRequest{BookingDateTime: &dt}

		p, err := req.ToParams()
		require.NoError(t, err)
		require.NotNil(t, p.BookingDate)
		assert.Equal(t, time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC), *p.BookingDate)
		require.NotNil(t, p.StartTime)
		assert.Equal(t, "19:00", *p.StartTime)
	})

	t.Run("explicit slot index suppresses the derived start time", func(t *testing.T) {
		dt := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
		req := request.CreateBookingRequest{
			BookingDateTime: &dt,
			SlotIndex:       intPtr(2),
		}

		p, err := req.ToParams()
		require.NoError(t, err)
		assert.Nil(t, p.StartTime)
		require.NotNil(t, p.SlotIndex)
		assert.Equal(t, 2, *p.SlotIndex)
	})

	t.Run("malformed booking_date", func(t *testing.T) {
		req := request.CreateBookingRequest{BookingDate: strPtr("01-09-2026")}

		_, err := req.ToParams()
		assert.Error(t, err)
	})
}

package api

import (
	"errors"
	"net/http"
	"time"

	"venue-booking/internal/domain/booking"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler serves the public scheduling endpoints. They are
// not behind auth so customers can browse before logging in.
type AvailabilityHandler struct {
	bookingQueries queries.BookingQueries
}

func NewAvailabilityHandler(bookingQueries queries.BookingQueries) *AvailabilityHandler {
	return &AvailabilityHandler{bookingQueries: bookingQueries}
}

const dateQueryLayout = "2006-01-02"

// dateTimeQueryLayouts are the accepted date-time forms for the
// availability probe. Plain dates ask about the whole day.
var dateTimeQueryLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// @Summary Check availability
// @Description Whether a venue is bookable on a date, or at a specific time when a date-time is given
// @Tags availability
// @Produce json
// @Param venue_id query string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD) or date-time (YYYY-MM-DDTHH:MM)"
// @Success 200 {object} resdto.DateAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/availability [get]
func (h *AvailabilityHandler) CheckDateAvailability(c *gin.Context) {
	venueID, err := uuid.Parse(c.Query("venue_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID")
		return
	}

	at, hasTime, err := parseDateQuery(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD or YYYY-MM-DDTHH:MM")
		return
	}

	var available bool
	if hasTime {
		available, err = h.bookingQueries.IsTimeAvailable(c.Request.Context(), venueID, at)
	} else {
		available, err = h.bookingQueries.IsDateAvailable(c.Request.Context(), venueID, at)
	}
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DateAvailabilityResponse{
		VenueID:   venueID,
		Date:      c.Query("date"),
		Available: available,
	})
}

// @Summary Slot availability
// @Description Per-slot availability breakdown for a venue and date
// @Tags availability
// @Produce json
// @Param venue_id query string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/slot-availability [get]
func (h *AvailabilityHandler) GetSlotAvailability(c *gin.Context) {
	venueID, date, ok := h.bindVenueAndDate(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.SlotAvailability(c.Request.Context(), venueID, date)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotAvailabilityView(view))
}

// @Summary List time slots
// @Description The fixed time slots every venue is divided into
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.TimeSlotResponse
// @Router /bookings/time-slots [get]
func (h *AvailabilityHandler) GetTimeSlots(c *gin.Context) {
	slots := booking.AllSlots()
	out := make([]resdto.TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, resdto.TimeSlotResponse{
			SlotIndex: s.Index(),
			StartTime: s.Start().String(),
			EndTime:   s.End().String(),
			Label:     s.Label(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *AvailabilityHandler) bindVenueAndDate(c *gin.Context) (uuid.UUID, time.Time, bool) {
	venueID, err := uuid.Parse(c.Query("venue_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID")
		return uuid.Nil, time.Time{}, false
	}

	date, err := time.Parse(dateQueryLayout, c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		return uuid.Nil, time.Time{}, false
	}

	return venueID, date, true
}

// parseDateQuery accepts a plain date or a date-time. The second return
// reports whether a clock time was supplied.
func parseDateQuery(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dateQueryLayout, s); err == nil {
		return t, false, nil
	}
	for _, layout := range dateTimeQueryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, errs.Newf("unsupported date query %q", s)
}

func (h *AvailabilityHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

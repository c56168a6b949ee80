package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/metrics"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	metrics         *metrics.Metrics
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	m *metrics.Metrics,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		metrics:         m,
	}
}

// @Summary Create booking
// @Description Book a venue time slot for a date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date format, expected YYYY-MM-DD")
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), actor, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVenueNotFound), errors.Is(err, errs.ErrVenueUnavailable):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue is not available for booking")
		case errors.Is(err, errs.ErrMissingBookingDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking date is required")
		case errors.Is(err, errs.ErrNoUsableTimeSpecified):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Either a slot index or a start time must be provided")
		case errors.Is(err, errs.ErrUnmatchedStartTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time does not match any bookable slot")
		case errors.Is(err, errs.ErrInvalidSlotIndex):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot index")
		case errors.Is(err, errs.ErrInvalidUnitPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "A positive unit price is required")
		case errors.Is(err, errs.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest count exceeds venue capacity")
		case errors.Is(err, errs.ErrInvalidDiscount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount cannot exceed the total amount")
		case errors.Is(err, errs.ErrSlotAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already booked")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	h.metrics.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List the authenticated user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.PagedBookingsResponse
// @Router /bookings/user/my-bookings [get]
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	paged, err := h.bookingQueries.ListByUser(c.Request.Context(), actor, actor.ID, pageFromQuery(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromPagedBookings(paged))
}

// @Summary List vendor bookings
// @Description List bookings across all venues of the authenticated vendor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, CONFIRMED, CANCELLED, COMPLETED)"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.PagedBookingsResponse
// @Failure 403 {object} map[string]string
// @Router /bookings/vendor [get]
func (h *BookingHandler) GetVendorBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	paged, err := h.bookingQueries.ListByVendor(c.Request.Context(), actor, actor.ID, status, pageFromQuery(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPagedBookings(paged))
}

// @Summary List venue bookings
// @Description List bookings for one venue owned by the authenticated vendor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param venueId path string true "Venue ID"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.PagedBookingsResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/venue/{venueId} [get]
func (h *BookingHandler) GetVenueBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	venueID, err := uuid.Parse(c.Param("venueId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID")
		return
	}

	paged, err := h.bookingQueries.ListByVenue(c.Request.Context(), actor, venueID, pageFromQuery(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found")
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPagedBookings(paged))
}

// @Summary Confirm booking
// @Description Confirm a pending booking and return the day's slot availability
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ConfirmBookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	result, err := h.bookingCommands.Confirm(c.Request.Context(), actor, id)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	h.metrics.BookingsByState.WithLabelValues("CONFIRMED").Inc()
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Reject booking
// @Description Reject a pending or confirmed booking with an optional reason
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RejectBookingRequest false "Rejection reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	var req reqdto.RejectBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
			return
		}
	}

	view, err := h.bookingCommands.Reject(c.Request.Context(), actor, id, req.TrimmedReason())
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	h.metrics.BookingsByState.WithLabelValues("CANCELLED").Inc()
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	view, err := h.bookingCommands.Complete(c.Request.Context(), actor, id)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	h.metrics.BookingsByState.WithLabelValues("COMPLETED").Inc()
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel the authenticated user's own booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	view, err := h.bookingCommands.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	h.metrics.BookingsByState.WithLabelValues("CANCELLED").Inc()
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Description Soft delete a booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID")
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), actor, id); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Vendor booking stats
// @Description Aggregate booking counts and revenue for the authenticated vendor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VendorStatsResponse
// @Failure 403 {object} map[string]string
// @Router /bookings/vendor/statistics [get]
func (h *BookingHandler) GetVendorStats(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	stats, err := h.bookingQueries.VendorStats(c.Request.Context(), actor, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVendorStats(stats))
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
	case errors.Is(err, errs.ErrInvalidStateTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking cannot change to the requested state")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func pageFromQuery(c *gin.Context) queries.Page {
	page := queries.Page{}
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		page.Number = n
	}
	if s, err := strconv.Atoi(c.Query("size")); err == nil {
		page.Size = s
	}
	return page
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/metrics"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/testutil"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	// Identity injected by the stand-in auth middleware; tests mutate
	// these before performing a request.
	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, metrics.New("test"))

	s.actorID = uuid.New()
	s.actorRole = user.RoleUser

	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	})

	g := s.router.Group("/api/bookings")
	g.POST("", s.handler.CreateBooking)
	g.GET("/user/my-bookings", s.handler.GetMyBookings)
	g.GET("/vendor", s.handler.GetVendorBookings)
	g.GET("/vendor/statistics", s.handler.GetVendorStats)
	g.GET("/venue/:venueId", s.handler.GetVenueBookings)
	g.GET("/:id", s.handler.GetBooking)
	g.POST("/:id/confirm", s.handler.ConfirmBooking)
	g.POST("/:id/reject", s.handler.RejectBooking)
	g.POST("/:id/complete", s.handler.CompleteBooking)
	g.POST("/:id/cancel", s.handler.CancelBooking)
	g.DELETE("/:id", s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with the booking", func() {
		s.actorID = b.UserID
		s.mockCommands.EXPECT().Create(gomock.Any(), user.Actor{ID: b.UserID, Role: user.RoleUser}, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.BookingCode, response.BookingCode)
		s.Equal("PENDING", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing venue_id", mutate: testutil.Field("venue_id", nil)},
			{name: "missing customer_name", mutate: testutil.Field("customer_name", nil)},
			{name: "missing customer_phone", mutate: testutil.Field("customer_phone", nil)},
			{name: "guest_count below one", mutate: testutil.Field("guest_count", 0)},
			{name: "negative unit_price", mutate: testutil.Field("unit_price", -1)},
			{name: "malformed booking_date", mutate: testutil.Field("booking_date", "01-09-2026")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "venue unavailable",
				commandsError:  errs.ErrVenueUnavailable,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Venue is not available for booking",
			},
			{
				name:           "slot already booked",
				commandsError:  errs.ErrSlotAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Time slot is already booked",
			},
			{
				name:           "start time matches no slot",
				commandsError:  errs.ErrUnmatchedStartTime,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Start time does not match any bookable slot",
			},
			{
				name:           "capacity exceeded",
				commandsError:  errs.ErrCapacityExceeded,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Guest count exceeds venue capacity",
			},
			{
				name:           "discount exceeds total",
				commandsError:  errs.ErrInvalidDiscount,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Discount cannot exceed the total amount",
			},
			{
				name:           "marked error keeps its kind through wrapping",
				commandsError:  errs.Wrap(errs.Mark(errs.New("slot 9 out of range"), errs.ErrInvalidSlotIndex), "resolve slot"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid slot index",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	url := "/api/bookings/" + view.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 for a stranger's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	url := "/api/bookings/user/my-bookings?page=2&size=10"

	s.Run("success: forwards pagination and returns the page", func() {
		paged := &queries.PagedBookings{
			Items:      []*queries.BookingView{builder.NewBookingBuilder().BuildView()},
			Page:       2,
			Size:       10,
			TotalItems: 11,
			TotalPages: 2,
		}
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), gomock.Any(), s.actorID, queries.Page{Number: 2, Size: 10}).
			Return(paged, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.PagedBookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(2, response.Page)
		s.Equal(int64(2), response.TotalPages)
	})
}

func (s *BookingHandlerTestSuite) TestGetVendorBookings() {
	s.Run("success: passes the status filter through", func() {
		s.actorRole = user.RoleVendor

		s.mockQueries.EXPECT().
			ListByVendor(gomock.Any(), gomock.Any(), s.actorID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, _ uuid.UUID, status *string, _ queries.Page) (*queries.PagedBookings, error) {
				s.Require().NotNil(status)
				s.Equal("PENDING", *status)
				return &queries.PagedBookings{Items: []*queries.BookingView{}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/vendor?status=PENDING", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for a plain user", func() {
		s.mockQueries.EXPECT().
			ListByVendor(gomock.Any(), gomock.Any(), s.actorID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/vendor", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	b := builder.NewBookingBuilder()
	url := "/api/bookings/" + b.ID.String() + "/confirm"

	s.Run("success: returns the booking and refreshed availability", func() {
		s.actorRole = user.RoleVendor
		result := &commands.ConfirmResult{
			Booking: b.WithStatus(booking.StatusConfirmed).BuildView(),
			SlotAvailability: &queries.SlotAvailabilityView{
				VenueID:        b.VenueID,
				TotalSlots:     4,
				BookedSlots:    1,
				AvailableSlots: 3,
			},
		}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), b.ID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.ConfirmBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Booking.Status)
		s.Require().NotNil(response.SlotAvailability)
		s.Equal(3, response.SlotAvailability.AvailableSlots)
	})

	s.Run("error: 422 when the booking is in a terminal state", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), b.ID).
			Return(nil, errs.ErrInvalidStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Booking cannot change to the requested state")
	})

	s.Run("error: 403 when the actor is not the venue vendor", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), b.ID).
			Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestRejectBooking() {
	b := builder.NewBookingBuilder()
	url := "/api/bookings/" + b.ID.String() + "/reject"

	s.Run("success: passes the trimmed reason through", func() {
		s.actorRole = user.RoleVendor
		view := b.WithStatus(booking.StatusCancelled).BuildView()

		s.mockCommands.EXPECT().Reject(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ any, _ uuid.UUID, reason *string) (*queries.BookingView, error) {
				s.Require().NotNil(reason)
				s.Equal("double booked offline", *reason)
				return view, nil
			}).Times(1)

		body := map[string]any{"reason": "  double booked offline  "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CANCELLED", response.Status)
	})

	s.Run("success: a reason is optional", func() {
		view := b.WithStatus(booking.StatusCancelled).BuildView()
		s.mockCommands.EXPECT().Reject(gomock.Any(), gomock.Any(), b.ID, nil).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	b := builder.NewBookingBuilder()
	url := "/api/bookings/" + b.ID.String() + "/cancel"

	s.Run("success: owner cancels their booking", func() {
		view := b.WithStatus(booking.StatusCancelled).BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CANCELLED", response.Status)
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	b := builder.NewBookingBuilder()
	url := "/api/bookings/" + b.ID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already gone", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetVendorStats() {
	url := "/api/bookings/vendor/statistics"

	s.Run("success: returns the vendor's aggregates", func() {
		s.actorRole = user.RoleVendor
		stats := &queries.VendorBookingStats{
			TotalBookings:   12,
			PendingBookings: 3,
		}
		s.mockQueries.EXPECT().VendorStats(gomock.Any(), gomock.Any(), s.actorID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.VendorStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(12), response.TotalBookings)
	})

	s.Run("error: 403 for a plain user", func() {
		s.mockQueries.EXPECT().VendorStats(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

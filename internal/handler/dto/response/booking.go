package response

import (
	"time"

	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	BookingCode        string     `json:"bookingCode"`
	UserID             uuid.UUID  `json:"userId"`
	VendorID           uuid.UUID  `json:"vendorId"`
	VenueID            uuid.UUID  `json:"venueId"`
	VenueTitle         *string    `json:"venueTitle,omitempty"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	CustomerEmail      *string    `json:"customerEmail,omitempty"`
	BookingDate        string     `json:"bookingDate"`
	SlotIndex          int        `json:"slotIndex"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	SlotLabel          string     `json:"slotLabel"`
	GuestCount         int        `json:"guestCount"`
	UnitPrice          int64      `json:"unitPrice"`
	TotalAmount        int64      `json:"totalAmount"`
	DepositAmount      *int64     `json:"depositAmount,omitempty"`
	DiscountAmount     int64      `json:"discountAmount"`
	FinalAmount        int64      `json:"finalAmount"`
	AdditionalServices *string    `json:"additionalServices,omitempty"`
	SpecialRequests    *string    `json:"specialRequests,omitempty"`
	Status             string     `json:"status"`
	ConfirmedBy        *uuid.UUID `json:"confirmedBy,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmedAt,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelledBy,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                 v.ID,
		BookingCode:        v.BookingCode,
		UserID:             v.UserID,
		VendorID:           v.VendorID,
		VenueID:            v.VenueID,
		VenueTitle:         v.VenueTitle,
		CustomerName:       v.CustomerName,
		CustomerPhone:      v.CustomerPhone,
		CustomerEmail:      v.CustomerEmail,
		BookingDate:        v.BookingDate.Format(dateLayout),
		SlotIndex:          v.SlotIndex,
		StartTime:          v.StartTime,
		EndTime:            v.EndTime,
		SlotLabel:          v.SlotLabel,
		GuestCount:         v.GuestCount,
		UnitPrice:          v.UnitPrice,
		TotalAmount:        v.TotalAmount,
		DepositAmount:      v.DepositAmount,
		DiscountAmount:     v.DiscountAmount,
		FinalAmount:        v.FinalAmount,
		AdditionalServices: v.AdditionalServices,
		SpecialRequests:    v.SpecialRequests,
		Status:             v.Status,
		ConfirmedBy:        v.ConfirmedBy,
		ConfirmedAt:        v.ConfirmedAt,
		CancelledBy:        v.CancelledBy,
		CancelledAt:        v.CancelledAt,
		CancellationReason: v.CancellationReason,
		CompletedAt:        v.CompletedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type PagedBookingsResponse struct {
	Items      []*BookingResponse `json:"items"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalItems int64              `json:"totalItems"`
	TotalPages int64              `json:"totalPages"`
}

func FromPagedBookings(p *queries.PagedBookings) *PagedBookingsResponse {
	items := make([]*BookingResponse, 0, len(p.Items))
	for _, v := range p.Items {
		items = append(items, FromBookingView(v))
	}
	return &PagedBookingsResponse{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

type SlotEntryResponse struct {
	SlotIndex int    `json:"slotIndex"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
	Status    string `json:"status"`
}

type SlotAvailabilityResponse struct {
	VenueID        uuid.UUID           `json:"venueId"`
	VenueTitle     string              `json:"venueTitle"`
	Date           string              `json:"date"`
	TotalSlots     int                 `json:"totalSlots"`
	BookedSlots    int                 `json:"bookedSlots"`
	AvailableSlots int                 `json:"availableSlots"`
	Slots          []SlotEntryResponse `json:"slots"`
}

func FromSlotAvailabilityView(v *queries.SlotAvailabilityView) *SlotAvailabilityResponse {
	slots := make([]SlotEntryResponse, 0, len(v.Slots))
	for _, s := range v.Slots {
		slots = append(slots, SlotEntryResponse{
			SlotIndex: s.SlotIndex,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Label:     s.Label,
			Status:    s.Status,
		})
	}
	return &SlotAvailabilityResponse{
		VenueID:        v.VenueID,
		VenueTitle:     v.VenueTitle,
		Date:           v.Date.Format(dateLayout),
		TotalSlots:     v.TotalSlots,
		BookedSlots:    v.BookedSlots,
		AvailableSlots: v.AvailableSlots,
		Slots:          slots,
	}
}

type ConfirmBookingResponse struct {
	Booking          *BookingResponse          `json:"booking"`
	SlotAvailability *SlotAvailabilityResponse `json:"slotAvailability,omitempty"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmBookingResponse {
	resp := &ConfirmBookingResponse{
		Booking: FromBookingView(r.Booking),
	}
	if r.SlotAvailability != nil {
		resp.SlotAvailability = FromSlotAvailabilityView(r.SlotAvailability)
	}
	return resp
}

type DateAvailabilityResponse struct {
	VenueID   uuid.UUID `json:"venueId"`
	Date      string    `json:"date"`
	Available bool      `json:"available"`
}

type TimeSlotResponse struct {
	SlotIndex int    `json:"slotIndex"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
}

type VendorStatsResponse struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
	CompletedBookings int64 `json:"completedBookings"`
	UpcomingBookings  int64 `json:"upcomingBookings"`
	TodayBookings     int64 `json:"todayBookings"`
	TotalRevenue      int64 `json:"totalRevenue"`
}

func FromVendorStats(v *queries.VendorBookingStats) *VendorStatsResponse {
	return &VendorStatsResponse{
		TotalBookings:     v.TotalBookings,
		PendingBookings:   v.PendingBookings,
		ConfirmedBookings: v.ConfirmedBookings,
		CancelledBookings: v.CancelledBookings,
		CompletedBookings: v.CompletedBookings,
		UpcomingBookings:  v.UpcomingBookings,
		TodayBookings:     v.TodayBookings,
		TotalRevenue:      v.TotalRevenue,
	}
}

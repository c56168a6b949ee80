package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is the read-side projection of a booking, enriched with
// the venue title so listings render without a second lookup.
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	BookingCode        string     `json:"booking_code"`
	UserID             uuid.UUID  `json:"user_id"`
	VendorID           uuid.UUID  `json:"vendor_id"`
	VenueID            uuid.UUID  `json:"venue_id"`
	VenueTitle         *string    `json:"venue_title,omitempty"`
	CustomerName       string     `json:"customer_name"`
	CustomerPhone      string     `json:"customer_phone"`
	CustomerEmail      *string    `json:"customer_email,omitempty"`
	BookingDate        time.Time  `json:"booking_date"`
	SlotIndex          int        `json:"slot_index"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	SlotLabel          string     `json:"slot_label"`
	GuestCount         int        `json:"guest_count"`
	UnitPrice          int64      `json:"unit_price"`
	TotalAmount        int64      `json:"total_amount"`
	DepositAmount      *int64     `json:"deposit_amount,omitempty"`
	DiscountAmount     int64      `json:"discount_amount"`
	FinalAmount        int64      `json:"final_amount"`
	AdditionalServices *string    `json:"additional_services,omitempty"`
	SpecialRequests    *string    `json:"special_requests,omitempty"`
	Status             string     `json:"status"`
	ConfirmedBy        *uuid.UUID `json:"confirmed_by,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// SlotEntry is one time slot annotated with its booked state for a
// given venue and date.
type SlotEntry struct {
	SlotIndex int    `json:"slot_index"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
	Status    string `json:"status"`
}

type SlotAvailabilityView struct {
	VenueID        uuid.UUID   `json:"venue_id"`
	VenueTitle     string      `json:"venue_title"`
	Date           time.Time   `json:"date"`
	TotalSlots     int         `json:"total_slots"`
	BookedSlots    int         `json:"booked_slots"`
	AvailableSlots int         `json:"available_slots"`
	Slots          []SlotEntry `json:"slots"`
}

type VendorBookingStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	UpcomingBookings  int64 `json:"upcoming_bookings"`
	TodayBookings     int64 `json:"today_bookings"`
	TotalRevenue      int64 `json:"total_revenue"`
}

// VenueSummary is the slice of catalog data the read side needs for
// availability responses.
type VenueSummary struct {
	ID         uuid.UUID `json:"id"`
	VendorID   uuid.UUID `json:"vendor_id"`
	Title      string    `json:"title"`
	TotalSlots int       `json:"total_slots"`
}

// AuthorizedUserView represents read-optimized user data with
// authorization info.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Page holds page-number pagination inputs. Page is 1-based.
type Page struct {
	Number int
	Size   int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps the page request to sane bounds.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PagedBookings is one page of booking views plus totals.
type PagedBookings struct {
	Items      []*BookingView `json:"items"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalItems int64          `json:"total_items"`
	TotalPages int64          `json:"total_pages"`
}

func NewPagedBookings(items []*BookingView, page Page, total int64) *PagedBookings {
	totalPages := total / int64(page.Size)
	if total%int64(page.Size) != 0 {
		totalPages++
	}
	return &PagedBookings{
		Items:      items,
		Page:       page.Number,
		Size:       page.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

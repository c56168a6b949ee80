package request

import (
	"strings"
	"time"

	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VenueID            uuid.UUID  `json:"venue_id" binding:"required"`
	CustomerName       string     `json:"customer_name" binding:"required"`
	CustomerPhone      string     `json:"customer_phone" binding:"required"`
	CustomerEmail      *string    `json:"customer_email,omitempty"`
	BookingDate        *string    `json:"booking_date,omitempty"`
	BookingDateTime    *time.Time `json:"booking_date_time,omitempty"`
	SlotIndex          *int       `json:"slot_index,omitempty"`
	StartTime          *string    `json:"start_time,omitempty"`
	GuestCount         *int       `json:"guest_count,omitempty" binding:"omitempty,min=1"`
	UnitPrice          *int64     `json:"unit_price,omitempty" binding:"omitempty,min=0"`
	DepositAmount      *int64     `json:"deposit_amount,omitempty" binding:"omitempty,min=0"`
	DiscountAmount     *int64     `json:"discount_amount,omitempty" binding:"omitempty,min=0"`
	AdditionalServices *string    `json:"additional_services,omitempty"`
	SpecialRequests    *string    `json:"special_requests,omitempty"`
}

const bookingDateLayout = "2006-01-02"

// ToParams resolves the two accepted date shapes. booking_date wins;
// booking_date_time is kept for older clients and also supplies the
// start time when no slot was given.
func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	p := commands.CreateBookingParams{
		VenueID:            r.VenueID,
		CustomerName:       strings.TrimSpace(r.CustomerName),
		CustomerPhone:      strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:      r.CustomerEmail,
		SlotIndex:          r.SlotIndex,
		StartTime:          r.StartTime,
		GuestCount:         r.GuestCount,
		UnitPrice:          r.UnitPrice,
		DepositAmount:      r.DepositAmount,
		DiscountAmount:     r.DiscountAmount,
		AdditionalServices: r.AdditionalServices,
		SpecialRequests:    r.SpecialRequests,
	}

	switch {
	case r.BookingDate != nil && strings.TrimSpace(*r.BookingDate) != "":
		date, err := time.Parse(bookingDateLayout, strings.TrimSpace(*r.BookingDate))
		if err != nil {
			return commands.CreateBookingParams{}, err
		}
		p.BookingDate = &date
	case r.BookingDateTime != nil:
		// Date and derived start time must come from the same instant,
		// or a non-UTC offset would split them across local days.
		date := r.BookingDateTime.UTC()
		p.BookingDate = &date
		if p.SlotIndex == nil && p.StartTime == nil {
			start := date.Format("15:04")
			p.StartTime = &start
		}
	}

	return p, nil
}

type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r RejectBookingRequest) TrimmedReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

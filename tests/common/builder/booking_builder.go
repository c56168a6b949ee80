//go:build unit

package builder

import (
	"time"

	"venue-booking/internal/domain/booking"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	Code           string
	UserID         uuid.UUID
	VendorID       uuid.UUID
	VenueID        uuid.UUID
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  *string
	BookingDate    time.Time
	SlotIndex      int
	GuestCount     int
	UnitPrice      int64
	TotalAmount    int64
	DiscountAmount int64
	FinalAmount    int64
	Status         booking.Status
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	date := now.AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &BookingBuilder{
		ID:             uuid.New(),
		Code:           "BK-20260901-A1B2",
		UserID:         uuid.New(),
		VendorID:       uuid.New(),
		VenueID:        uuid.New(),
		CustomerName:   "Nguyen Van A",
		CustomerPhone:  "+84901234567",
		BookingDate:    date,
		SlotIndex:      0,
		GuestCount:     100,
		UnitPrice:      500_000,
		TotalAmount:    50_000_000,
		DiscountAmount: 0,
		FinalAmount:    50_000_000,
		Status:         booking.StatusPending,
		CreatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	slot, err := booking.SlotFromIndex(b.SlotIndex)
	if err != nil {
		panic(err)
	}
	contact := booking.ReconstructCustomerContact(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	return booking.Reconstruct(
		b.ID, b.Code, b.UserID, b.VendorID, b.VenueID,
		contact, b.BookingDate, slot, b.GuestCount,
		booking.NewMoney(b.UnitPrice), booking.NewMoney(b.TotalAmount), nil,
		booking.NewMoney(b.DiscountAmount), booking.NewMoney(b.FinalAmount),
		booking.Notes{}, b.Status,
		nil, nil, nil, nil, nil, nil,
		b.CreatedAt, b.CreatedAt, nil,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	slot, err := booking.SlotFromIndex(b.SlotIndex)
	if err != nil {
		panic(err)
	}
	return &queries.BookingView{
		ID:             b.ID,
		BookingCode:    b.Code,
		UserID:         b.UserID,
		VendorID:       b.VendorID,
		VenueID:        b.VenueID,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		CustomerEmail:  b.CustomerEmail,
		BookingDate:    b.BookingDate,
		SlotIndex:      b.SlotIndex,
		StartTime:      slot.Start().String(),
		EndTime:        slot.End().String(),
		SlotLabel:      slot.Label(),
		GuestCount:     b.GuestCount,
		UnitPrice:      b.UnitPrice,
		TotalAmount:    b.TotalAmount,
		DiscountAmount: b.DiscountAmount,
		FinalAmount:    b.FinalAmount,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	date := b.BookingDate
	slotIndex := b.SlotIndex
	guests := b.GuestCount
	price := b.UnitPrice
	return commands.CreateBookingParams{
		VenueID:       b.VenueID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   &date,
		SlotIndex:     &slotIndex,
		GuestCount:    &guests,
		UnitPrice:     &price,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	date := b.BookingDate.Format("2006-01-02")
	slotIndex := b.SlotIndex
	guests := b.GuestCount
	price := b.UnitPrice
	return reqdto.CreateBookingRequest{
		VenueID:       b.VenueID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   &date,
		SlotIndex:     &slotIndex,
		GuestCount:    &guests,
		UnitPrice:     &price,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithSlotIndex(i int) *BookingBuilder {
	b.SlotIndex = i
	return b
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithVendor(id uuid.UUID) *BookingBuilder {
	b.VendorID = id
	return b
}

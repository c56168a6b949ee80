package booking

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
)

// CodeGenerator produces the random suffix of a booking code. Swappable
// so tests can fix the value.
type CodeGenerator interface {
	Suffix() string
}

const (
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffixLength = 4
)

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() CodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Suffix() string {
	buf := make([]byte, codeSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; nothing sensible to do but panic.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// Factory builds new bookings. It owns the parts of creation that need
// ambient services: the clock and the code generator.
type Factory struct {
	clock clock.Clock
	codes CodeGenerator
}

func NewFactory(clk clock.Clock, codes CodeGenerator) *Factory {
	return &Factory{clock: clk, codes: codes}
}

// NewBookingParams carries the already-resolved inputs for creation.
// Slot resolution and venue gating happen in the usecase before the
// factory runs; the factory owns pricing and assembly.
type NewBookingParams struct {
	UserID         uuid.UUID
	Venue          *venue.Venue
	Contact        CustomerContact
	BookingDate    time.Time
	Slot           TimeSlot
	GuestCount     *int
	UnitPrice      *int64
	DepositAmount  *int64
	DiscountAmount *int64
	Notes          Notes
}

// NewBooking validates pricing and capacity and assembles a PENDING
// booking. The unit price falls back to the venue's listed price when
// the request does not carry one; the guest count defaults to 1 for the
// total but the capacity check only applies when one was supplied.
func (f *Factory) NewBooking(p NewBookingParams) (*Booking, error) {
	unitPrice := NewMoney(p.Venue.Price())
	if p.UnitPrice != nil {
		unitPrice = NewMoney(*p.UnitPrice)
	}
	if !unitPrice.IsPositive() {
		return nil, errs.Mark(
			errs.Newf("resolved unit price %d is not positive", unitPrice.Amount()),
			errs.ErrInvalidUnitPrice,
		)
	}

	if p.GuestCount != nil && !p.Venue.HasCapacityFor(*p.GuestCount) {
		return nil, errs.Mark(
			errs.Newf("guest count %d exceeds venue capacity %d", *p.GuestCount, p.Venue.Capacity()),
			errs.ErrCapacityExceeded,
		)
	}

	guests := 1
	if p.GuestCount != nil {
		guests = *p.GuestCount
	}

	total := unitPrice.Mul(guests)
	discount := NewMoney(0)
	if p.DiscountAmount != nil {
		discount = NewMoney(*p.DiscountAmount)
	}
	// Money cannot go negative, so an oversized discount is rejected
	// rather than clamped.
	if discount.Amount() > total.Amount() {
		return nil, errs.Mark(
			errs.Newf("discount %d exceeds total %d", discount.Amount(), total.Amount()),
			errs.ErrInvalidDiscount,
		)
	}
	final := total.Sub(discount)

	var deposit *Money
	if p.DepositAmount != nil {
		m := NewMoney(*p.DepositAmount)
		deposit = &m
	}

	now := f.clock.Now()
	return &Booking{
		id:             uuid.New(),
		code:           f.generateCode(now),
		userID:         p.UserID,
		vendorID:       p.Venue.VendorID(),
		venueID:        p.Venue.ID(),
		contact:        p.Contact,
		bookingDate:    p.BookingDate,
		slot:           p.Slot,
		guestCount:     guests,
		unitPrice:      unitPrice,
		totalAmount:    total,
		depositAmount:  deposit,
		discountAmount: discount,
		finalAmount:    final,
		notes:          p.Notes,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// generateCode stamps the code with the creation date, not the booking
// date.
func (f *Factory) generateCode(createdAt time.Time) string {
	return "BK-" + createdAt.Format("20060102") + "-" + f.codes.Suffix()
}

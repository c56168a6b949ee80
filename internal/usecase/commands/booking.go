package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrDomainValidation = errs.New("domain validation error")

	// errCodeCollision signals a booking code draw that is already
	// taken; the whole transaction is retried with a fresh code.
	errCodeCollision = errs.New("booking code collision")
)

// maxCodeRetries bounds how often a create is retried when the random
// code suffix collides. With 36^4 suffixes per day this rarely fires.
const maxCodeRetries = 3

// CreateBookingParams carries the caller's booking intent. Optional
// fields are pointers so absent and zero stay distinguishable.
type CreateBookingParams struct {
	VenueID            uuid.UUID
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      *string
	BookingDate        *time.Time
	SlotIndex          *int
	StartTime          *string
	GuestCount         *int
	UnitPrice          *int64
	DepositAmount      *int64
	DiscountAmount     *int64
	AdditionalServices *string
	SpecialRequests    *string
}

// ConfirmResult pairs the confirmed booking with the day's refreshed
// slot breakdown so vendors see the effect immediately.
type ConfirmResult struct {
	Booking          *queries.BookingView
	SlotAvailability *queries.SlotAvailabilityView
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, p CreateBookingParams) (*queries.BookingView, error)
	Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) (*ConfirmResult, error)
	Reject(ctx context.Context, actor user.Actor, id uuid.UUID, reason *string) (*queries.BookingView, error)
	Complete(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingUseCaseImpl) Create(ctx context.Context, actor user.Actor, p CreateBookingParams) (*queries.BookingView, error) {
	var bookingID uuid.UUID
	var err error
	for attempt := 0; ; attempt++ {
		bookingID, err = c.createOnce(ctx, actor, p)
		if err == nil {
			break
		}
		if errors.Is(err, errCodeCollision) && attempt < maxCodeRetries {
			continue
		}
		return nil, err
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

// createOnce runs one create attempt in a single transaction, checking
// in order: the venue gate, date and slot resolution, the slot-taken
// pre-check, then the insert and the counter bump. The first violation
// wins. The partial unique index backs up the pre-check, so a
// concurrent create of the same slot surfaces as a duplicate-key error
// here rather than a second row.
func (c *bookingUseCaseImpl) createOnce(ctx context.Context, actor user.Actor, p CreateBookingParams) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Reads().VenueByID(ctx, p.VenueID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrVenueUnavailable
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !v.CanAcceptBookings() {
			return errs.ErrVenueUnavailable
		}

		if p.BookingDate == nil {
			return errs.ErrMissingBookingDate
		}
		date := truncateToDate(*p.BookingDate)

		slot, err := resolveSlot(p.SlotIndex, p.StartTime)
		if err != nil {
			return err
		}

		contact, err := booking.NewCustomerContact(p.CustomerName, p.CustomerPhone, p.CustomerEmail)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		taken, err := tx.Reads().SlotTaken(ctx, v.ID(), date, slot.Index())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return errs.WithDetail(errs.ErrSlotAlreadyBooked, "slot %s is already booked", slot.Label())
		}

		b, err := c.factory.NewBooking(booking.NewBookingParams{
			UserID:         actor.ID,
			Venue:          v,
			Contact:        contact,
			BookingDate:    date,
			Slot:           slot,
			GuestCount:     p.GuestCount,
			UnitPrice:      p.UnitPrice,
			DepositAmount:  p.DepositAmount,
			DiscountAmount: p.DiscountAmount,
			Notes: booking.Notes{
				AdditionalServices: p.AdditionalServices,
				SpecialRequests:    p.SpecialRequests,
			},
		})
		if err != nil {
			return err
		}

		if _, err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				switch infra.ConstraintName(err) {
				case repository.UniqueConstraintActiveSlot:
					return errs.WithDetail(errs.ErrSlotAlreadyBooked, "slot %s is already booked", slot.Label())
				case repository.UniqueConstraintBookingCode:
					return errCodeCollision
				}
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Venues().IncrementTimesBooked(ctx, v.ID()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookingID, nil
}

func (c *bookingUseCaseImpl) Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) (*ConfirmResult, error) {
	var venueID uuid.UUID
	var date time.Time

	err := c.transition(ctx, id, func(b *booking.Booking) error {
		if !user.Can(user.OpConfirmBooking, actor, resourceOf(b)) {
			return errs.ErrUnauthorized
		}
		venueID = b.VenueID()
		date = b.BookingDate()
		_, err := b.Confirm(actor.ID, c.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	availability, err := c.bookingQueries.SlotAvailability(ctx, venueID, date)
	if err != nil {
		return nil, err
	}

	return &ConfirmResult{Booking: view, SlotAvailability: availability}, nil
}

func (c *bookingUseCaseImpl) Reject(ctx context.Context, actor user.Actor, id uuid.UUID, reason *string) (*queries.BookingView, error) {
	err := c.transition(ctx, id, func(b *booking.Booking) error {
		if !user.Can(user.OpRejectBooking, actor, resourceOf(b)) {
			return errs.ErrUnauthorized
		}
		return b.Reject(actor.ID, c.clock.Now(), reason)
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, id)
}

func (c *bookingUseCaseImpl) Complete(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error) {
	err := c.transition(ctx, id, func(b *booking.Booking) error {
		if !user.Can(user.OpCompleteBooking, actor, resourceOf(b)) {
			return errs.ErrUnauthorized
		}
		return b.Complete(c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, id)
}

func (c *bookingUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error) {
	err := c.transition(ctx, id, func(b *booking.Booking) error {
		if !user.Can(user.OpCancelBooking, actor, resourceOf(b)) {
			return errs.ErrUnauthorized
		}
		return b.Cancel(actor.ID, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, id)
}

func (c *bookingUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return c.transition(ctx, id, func(b *booking.Booking) error {
		if !user.Can(user.OpDeleteBooking, actor, resourceOf(b)) {
			return errs.ErrUnauthorized
		}
		return b.SoftDelete(c.clock.Now())
	})
}

// transition loads the booking, applies mutate and persists the result
// inside one transaction. The row is locked for the duration, so two
// concurrent transitions serialize instead of clobbering each other.
func (c *bookingUseCaseImpl) transition(ctx context.Context, id uuid.UUID, mutate func(b *booking.Booking) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		before := b.Status()
		deletedBefore := b.IsDeleted()

		if err := mutate(b); err != nil {
			return err
		}

		if b.Status() == before && b.IsDeleted() == deletedBefore {
			// Idempotent no-op, nothing to write.
			return nil
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func resolveSlot(slotIndex *int, startTime *string) (booking.TimeSlot, error) {
	if slotIndex != nil {
		return booking.SlotFromIndex(*slotIndex)
	}

	if startTime == nil {
		return booking.TimeSlot{}, errs.ErrNoUsableTimeSpecified
	}

	t, err := booking.ParseTimeOfDay(*startTime)
	if err != nil {
		return booking.TimeSlot{}, errs.Mark(err, errs.ErrNoUsableTimeSpecified)
	}

	return booking.SlotFromStartTime(t)
}

func resourceOf(b *booking.Booking) user.BookingResource {
	return user.BookingResource{RequesterID: b.UserID(), VendorID: b.VendorID()}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

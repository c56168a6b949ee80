package booking

import (
	"time"

	"github.com/google/uuid"

	"venue-booking/internal/pkg/errs"
)

// Booking is one reservation of one slot on one venue and date. All
// mutation goes through the transition methods; rows are never hard
// deleted.
type Booking struct {
	id                 uuid.UUID
	code               string
	userID             uuid.UUID
	vendorID           uuid.UUID
	venueID            uuid.UUID
	contact            CustomerContact
	bookingDate        time.Time
	slot               TimeSlot
	guestCount         int
	unitPrice          Money
	totalAmount        Money
	depositAmount      *Money
	discountAmount     Money
	finalAmount        Money
	notes              Notes
	status             Status
	confirmedBy        *uuid.UUID
	confirmedAt        *time.Time
	cancelledBy        *uuid.UUID
	cancelledAt        *time.Time
	cancellationReason *string
	completedAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
	deletedAt          *time.Time
}

// Reconstruct rebuilds a Booking from persisted state without running
// any validation.
func Reconstruct(
	id uuid.UUID,
	code string,
	userID, vendorID, venueID uuid.UUID,
	contact CustomerContact,
	bookingDate time.Time,
	slot TimeSlot,
	guestCount int,
	unitPrice, totalAmount Money,
	depositAmount *Money,
	discountAmount, finalAmount Money,
	notes Notes,
	status Status,
	confirmedBy *uuid.UUID,
	confirmedAt *time.Time,
	cancelledBy *uuid.UUID,
	cancelledAt *time.Time,
	cancellationReason *string,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		code:               code,
		userID:             userID,
		vendorID:           vendorID,
		venueID:            venueID,
		contact:            contact,
		bookingDate:        bookingDate,
		slot:               slot,
		guestCount:         guestCount,
		unitPrice:          unitPrice,
		totalAmount:        totalAmount,
		depositAmount:      depositAmount,
		discountAmount:     discountAmount,
		finalAmount:        finalAmount,
		notes:              notes,
		status:             status,
		confirmedBy:        confirmedBy,
		confirmedAt:        confirmedAt,
		cancelledBy:        cancelledBy,
		cancelledAt:        cancelledAt,
		cancellationReason: cancellationReason,
		completedAt:        completedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		deletedAt:          deletedAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) Code() string                { return b.code }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) VendorID() uuid.UUID         { return b.vendorID }
func (b *Booking) VenueID() uuid.UUID          { return b.venueID }
func (b *Booking) Contact() CustomerContact    { return b.contact }
func (b *Booking) BookingDate() time.Time      { return b.bookingDate }
func (b *Booking) Slot() TimeSlot              { return b.slot }
func (b *Booking) GuestCount() int             { return b.guestCount }
func (b *Booking) UnitPrice() Money            { return b.unitPrice }
func (b *Booking) TotalAmount() Money          { return b.totalAmount }
func (b *Booking) DepositAmount() *Money       { return b.depositAmount }
func (b *Booking) DiscountAmount() Money       { return b.discountAmount }
func (b *Booking) FinalAmount() Money          { return b.finalAmount }
func (b *Booking) Notes() Notes                { return b.notes }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) ConfirmedBy() *uuid.UUID     { return b.confirmedBy }
func (b *Booking) ConfirmedAt() *time.Time     { return b.confirmedAt }
func (b *Booking) CancelledBy() *uuid.UUID     { return b.cancelledBy }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) CompletedAt() *time.Time     { return b.completedAt }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
func (b *Booking) DeletedAt() *time.Time       { return b.deletedAt }

func (b *Booking) IsDeleted() bool {
	return b.deletedAt != nil
}

// Confirm moves a pending booking to CONFIRMED, recording the acting
// vendor and time. A booking that is already CONFIRMED is left untouched
// and reported with changed=false so callers can stay idempotent.
func (b *Booking) Confirm(actor uuid.UUID, now time.Time) (changed bool, err error) {
	if b.status == StatusConfirmed {
		return false, nil
	}
	if b.status != StatusPending {
		return false, errs.Mark(
			errs.Newf("only pending bookings can be confirmed, current status: %s", b.status),
			errs.ErrInvalidStateTransition,
		)
	}
	b.status = StatusConfirmed
	b.confirmedBy = &actor
	b.confirmedAt = &now
	b.updatedAt = now
	return true, nil
}

// Reject cancels a pending or confirmed booking on the vendor side,
// recording the actor, time and an optional reason.
func (b *Booking) Reject(actor uuid.UUID, now time.Time, reason *string) error {
	if b.status.IsTerminal() {
		return errs.Mark(
			errs.Newf("only pending or confirmed bookings can be rejected, current status: %s", b.status),
			errs.ErrInvalidStateTransition,
		)
	}
	b.status = StatusCancelled
	b.cancelledBy = &actor
	b.cancelledAt = &now
	b.cancellationReason = reason
	b.updatedAt = now
	return nil
}

// Cancel is the customer-side cancellation. Completed bookings cannot be
// cancelled, and cancelling twice is an error.
func (b *Booking) Cancel(actor uuid.UUID, now time.Time) error {
	if b.status == StatusCancelled {
		return errs.Mark(
			errs.New("booking is already cancelled"),
			errs.ErrInvalidStateTransition,
		)
	}
	if b.status == StatusCompleted {
		return errs.Mark(
			errs.New("cannot cancel a completed booking"),
			errs.ErrInvalidStateTransition,
		)
	}
	b.status = StatusCancelled
	b.cancelledBy = &actor
	b.cancelledAt = &now
	b.updatedAt = now
	return nil
}

// Complete closes out a confirmed booking after the event took place.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return errs.Mark(
			errs.Newf("only confirmed bookings can be completed, current status: %s", b.status),
			errs.ErrInvalidStateTransition,
		)
	}
	b.status = StatusCompleted
	b.completedAt = &now
	b.updatedAt = now
	return nil
}

// SoftDelete hides the booking from all listings. Completed bookings are
// kept for the financial record and cannot be deleted.
func (b *Booking) SoftDelete(now time.Time) error {
	if b.status == StatusCompleted {
		return errs.Mark(
			errs.New("cannot delete a completed booking"),
			errs.ErrInvalidStateTransition,
		)
	}
	b.deletedAt = &now
	b.updatedAt = now
	return nil
}

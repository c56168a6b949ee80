package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
)

// UniqueConstraintBookingCode and UniqueConstraintActiveSlot name the
// two unique indexes an insert can trip. Callers use them to decide
// between a code retry and a slot conflict.
const (
	UniqueConstraintBookingCode = "bookings_booking_code_key"
	UniqueConstraintActiveSlot  = "bookings_active_slot_key"
)

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var deposit *int64
	if d := b.DepositAmount(); d != nil {
		v := d.Amount()
		deposit = &v
	}

	query, args, err := db.Builder.
		Insert("bookings").
		Columns(
			"id",
			"booking_code",
			"user_id",
			"vendor_id",
			"venue_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"booking_date",
			"slot_index",
			"start_time",
			"end_time",
			"guest_count",
			"unit_price",
			"total_amount",
			"deposit_amount",
			"discount_amount",
			"final_amount",
			"additional_services",
			"special_requests",
			"status",
			"created_at",
			"updated_at",
		).
		Values(
			b.ID(),
			b.Code(),
			b.UserID(),
			b.VendorID(),
			b.VenueID(),
			b.Contact().Name(),
			b.Contact().Phone(),
			b.Contact().Email(),
			b.BookingDate(),
			b.Slot().Index(),
			b.Slot().Start().String(),
			b.Slot().End().String(),
			b.GuestCount(),
			b.UnitPrice().Amount(),
			b.TotalAmount().Amount(),
			deposit,
			b.DiscountAmount().Amount(),
			b.FinalAmount().Amount(),
			b.Notes().AdditionalServices,
			b.Notes().SpecialRequests,
			b.Status().String(),
			b.CreatedAt(),
			b.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return b.ID(), nil
}

// Update persists the mutable state of a booking after a transition.
// Immutable creation-time columns are left alone.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	query, args, err := db.Builder.
		Update("bookings").
		Set("status", b.Status().String()).
		Set("confirmed_by", b.ConfirmedBy()).
		Set("confirmed_at", b.ConfirmedAt()).
		Set("cancelled_by", b.CancelledBy()).
		Set("cancelled_at", b.CancelledAt()).
		Set("cancellation_reason", b.CancellationReason()).
		Set("completed_at", b.CompletedAt()).
		Set("deleted_at", b.DeletedAt()).
		Set("updated_at", b.UpdatedAt()).
		Where(squirrel.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking update", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

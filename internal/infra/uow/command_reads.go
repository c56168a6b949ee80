package uow

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
	"venue-booking/internal/usecase/shared"
)

type commandReads struct {
	dbtx db.DBTX
	// lockRows adds FOR UPDATE to the booking lookup; only meaningful
	// inside a transaction.
	lockRows bool
}

func newCommandReads(dbtx db.DBTX, lockRows bool) shared.CommandReads {
	return &commandReads{dbtx: dbtx, lockRows: lockRows}
}

func (r *commandReads) VenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error) {
	query, args, err := db.Builder.
		Select(
			"id",
			"vendor_id",
			"title",
			"price",
			"capacity",
			"total_slots",
			"times_booked",
			"is_active",
			"status",
			"deleted_at",
		).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build venue query", err)
	}

	var (
		venueID     uuid.UUID
		vendorID    uuid.UUID
		title       string
		price       int64
		capacity    int
		totalSlots  int
		timesBooked int
		active      bool
		status      string
		deletedAt   *time.Time
	)
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&venueID,
		&vendorID,
		&title,
		&price,
		&capacity,
		&totalSlots,
		&timesBooked,
		&active,
		&status,
		&deletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}

	return venue.Reconstruct(
		venueID,
		vendorID,
		title,
		price,
		capacity,
		totalSlots,
		timesBooked,
		active,
		venue.PublicationStatus(status),
		deletedAt,
	), nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	builder := db.Builder.
		Select(
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
			"guest_count",
			"unit_price",
			"total_amount",
			"deposit_amount",
			"discount_amount",
			"final_amount",
			"additional_services",
			"special_requests",
			"status",
			"confirmed_by",
			"confirmed_at",
			"cancelled_by",
			"cancelled_at",
			"cancellation_reason",
			"completed_at",
			"created_at",
			"updated_at",
			"deleted_at",
		).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL")
	if r.lockRows {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var (
		bookingID          uuid.UUID
		code               string
		userID             uuid.UUID
		vendorID           uuid.UUID
		venueID            uuid.UUID
		customerName       string
		customerPhone      string
		customerEmail      *string
		bookingDate        time.Time
		slotIndex          int
		guestCount         int
		unitPrice          int64
		totalAmount        int64
		depositAmount      *int64
		discountAmount     int64
		finalAmount        int64
		additionalServices *string
		specialRequests    *string
		status             string
		confirmedBy        *uuid.UUID
		confirmedAt        *time.Time
		cancelledBy        *uuid.UUID
		cancelledAt        *time.Time
		cancellationReason *string
		completedAt        *time.Time
		createdAt          time.Time
		updatedAt          time.Time
		deletedAt          *time.Time
	)
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&bookingID,
		&code,
		&userID,
		&vendorID,
		&venueID,
		&customerName,
		&customerPhone,
		&customerEmail,
		&bookingDate,
		&slotIndex,
		&guestCount,
		&unitPrice,
		&totalAmount,
		&depositAmount,
		&discountAmount,
		&finalAmount,
		&additionalServices,
		&specialRequests,
		&status,
		&confirmedBy,
		&confirmedAt,
		&cancelledBy,
		&cancelledAt,
		&cancellationReason,
		&completedAt,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	slot, err := booking.SlotFromIndex(slotIndex)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot index is invalid", err)
	}

	var deposit *booking.Money
	if depositAmount != nil {
		m := booking.NewMoney(*depositAmount)
		deposit = &m
	}

	return booking.Reconstruct(
		bookingID,
		code,
		userID,
		vendorID,
		venueID,
		booking.ReconstructCustomerContact(customerName, customerPhone, customerEmail),
		bookingDate,
		slot,
		guestCount,
		booking.NewMoney(unitPrice),
		booking.NewMoney(totalAmount),
		deposit,
		booking.NewMoney(discountAmount),
		booking.NewMoney(finalAmount),
		booking.Notes{
			AdditionalServices: additionalServices,
			SpecialRequests:    specialRequests,
		},
		booking.Status(status),
		confirmedBy,
		confirmedAt,
		cancelledBy,
		cancelledAt,
		cancellationReason,
		completedAt,
		createdAt,
		updatedAt,
		deletedAt,
	), nil
}

func (r *commandReads) SlotTaken(ctx context.Context, venueID uuid.UUID, date time.Time, slotIndex int) (bool, error) {
	query, args, err := db.Builder.
		Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"venue_id":     venueID,
			"booking_date": date,
			"slot_index":   slotIndex,
		}).
		Where(squirrel.NotEq{"status": "CANCELLED"}).
		Where("deleted_at IS NULL").
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build slot check query", err)
	}

	var one int
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}

	return true, nil
}

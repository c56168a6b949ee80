package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
	"venue-booking/internal/usecase/queries"
)

// bookingViewColumns is the projection shared by every booking view
// query. The venue title comes from a left join so bookings against a
// since-deleted venue still render.
var bookingViewColumns = []string{
	"b.id",
	"b.booking_code",
	"b.user_id",
	"b.vendor_id",
	"b.venue_id",
	"v.title AS venue_title",
	"b.customer_name",
	"b.customer_phone",
	"b.customer_email",
	"b.booking_date",
	"b.slot_index",
	"b.start_time",
	"b.end_time",
	"b.guest_count",
	"b.unit_price",
	"b.total_amount",
	"b.deposit_amount",
	"b.discount_amount",
	"b.final_amount",
	"b.additional_services",
	"b.special_requests",
	"b.status",
	"b.confirmed_by",
	"b.confirmed_at",
	"b.cancelled_by",
	"b.cancelled_at",
	"b.cancellation_reason",
	"b.completed_at",
	"b.created_at",
	"b.updated_at",
}

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := viewSelect().
		Where(squirrel.Eq{"b.id": id}).
		Where("b.deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	row := r.dbtx.QueryRow(ctx, query, args...)
	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*queries.BookingView, int64, error) {
	return r.findPage(ctx, squirrel.Eq{"b.user_id": userID}, limit, offset)
}

func (r *BookingReadStore) FindByVendorID(ctx context.Context, vendorID uuid.UUID, status *string, limit, offset int) ([]*queries.BookingView, int64, error) {
	cond := squirrel.And{squirrel.Eq{"b.vendor_id": vendorID}}
	if status != nil {
		cond = append(cond, squirrel.Eq{"b.status": *status})
	}
	return r.findPage(ctx, cond, limit, offset)
}

func (r *BookingReadStore) FindByVenueID(ctx context.Context, venueID uuid.UUID, limit, offset int) ([]*queries.BookingView, int64, error) {
	return r.findPage(ctx, squirrel.Eq{"b.venue_id": venueID}, limit, offset)
}

func (r *BookingReadStore) findPage(ctx context.Context, cond squirrel.Sqlizer, limit, offset int) ([]*queries.BookingView, int64, error) {
	query, args, err := viewSelect().
		Where(cond).
		Where("b.deleted_at IS NULL").
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build booking page query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to query booking page", err)
	}
	defer rows.Close()

	var items []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read booking rows", err)
	}

	total, err := r.count(ctx, cond)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *BookingReadStore) count(ctx context.Context, cond squirrel.Sqlizer) (int64, error) {
	query, args, err := db.Builder.
		Select("COUNT(*)").
		From("bookings b").
		Where(cond).
		Where("b.deleted_at IS NULL").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build booking count query", err)
	}

	var total int64
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	return total, nil
}

// ActiveSlotIndexes returns the slot indexes already held for a venue
// and date. Cancelled and soft-deleted bookings do not occupy slots.
func (r *BookingReadStore) ActiveSlotIndexes(ctx context.Context, venueID uuid.UUID, date time.Time) ([]int, error) {
	query, args, err := db.Builder.
		Select("slot_index").
		From("bookings").
		Where(squirrel.Eq{"venue_id": venueID, "booking_date": date}).
		Where(squirrel.NotEq{"status": "CANCELLED"}).
		Where("deleted_at IS NULL").
		OrderBy("slot_index").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slot index query", err)
	}

	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active slots", err)
	}
	defer rows.Close()

	var indexes []int
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot index", err)
		}
		indexes = append(indexes, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}

	return indexes, nil
}

// VendorStats aggregates a vendor's bookings in one statement so the
// counters always describe a single snapshot. Revenue sums the final
// amounts of confirmed and completed bookings.
func (r *BookingReadStore) VendorStats(ctx context.Context, vendorID uuid.UUID, today time.Time) (*queries.VendorBookingStats, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := db.Builder.
		Select(
			"COUNT(*) AS total",
			"COUNT(*) FILTER (WHERE status = 'PENDING') AS pending",
			"COUNT(*) FILTER (WHERE status = 'CONFIRMED') AS confirmed",
			"COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled",
			"COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed",
		).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE booking_date > ? AND status IN ('PENDING', 'CONFIRMED')) AS upcoming", day)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE booking_date = ?) AS today", day)).
		Column("COALESCE(SUM(final_amount) FILTER (WHERE status IN ('CONFIRMED', 'COMPLETED')), 0) AS revenue").
		From("bookings").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build vendor stats query", err)
	}

	var stats queries.VendorBookingStats
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&stats.TotalBookings,
		&stats.PendingBookings,
		&stats.ConfirmedBookings,
		&stats.CancelledBookings,
		&stats.CompletedBookings,
		&stats.UpcomingBookings,
		&stats.TodayBookings,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query vendor stats", err)
	}

	return &stats, nil
}

func viewSelect() squirrel.SelectBuilder {
	return db.Builder.
		Select(bookingViewColumns...).
		From("bookings b").
		LeftJoin("venues v ON v.id = b.venue_id AND v.deleted_at IS NULL")
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID,
		&view.BookingCode,
		&view.UserID,
		&view.VendorID,
		&view.VenueID,
		&view.VenueTitle,
		&view.CustomerName,
		&view.CustomerPhone,
		&view.CustomerEmail,
		&view.BookingDate,
		&view.SlotIndex,
		&view.StartTime,
		&view.EndTime,
		&view.GuestCount,
		&view.UnitPrice,
		&view.TotalAmount,
		&view.DepositAmount,
		&view.DiscountAmount,
		&view.FinalAmount,
		&view.AdditionalServices,
		&view.SpecialRequests,
		&view.Status,
		&view.ConfirmedBy,
		&view.ConfirmedAt,
		&view.CancelledBy,
		&view.CancelledAt,
		&view.CancellationReason,
		&view.CompletedAt,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if slot, slotErr := booking.SlotFromIndex(view.SlotIndex); slotErr == nil {
		view.SlotLabel = slot.Label()
	}

	return &view, nil
}

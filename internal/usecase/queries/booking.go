package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the access policy for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID, page Page) (*PagedBookings, error)
	ListByVendor(ctx context.Context, actor user.Actor, vendorID uuid.UUID, status *string, page Page) (*PagedBookings, error)
	ListByVenue(ctx context.Context, actor user.Actor, venueID uuid.UUID, page Page) (*PagedBookings, error)
	IsDateAvailable(ctx context.Context, venueID uuid.UUID, date time.Time) (bool, error)
	IsTimeAvailable(ctx context.Context, venueID uuid.UUID, at time.Time) (bool, error)
	SlotAvailability(ctx context.Context, venueID uuid.UUID, date time.Time) (*SlotAvailabilityView, error)
	VendorStats(ctx context.Context, actor user.Actor, vendorID uuid.UUID) (*VendorBookingStats, error)
}

// BookingReadStore is the storage-facing port for booking projections.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*BookingView, int64, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, status *string, limit, offset int) ([]*BookingView, int64, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID, limit, offset int) ([]*BookingView, int64, error)
	ActiveSlotIndexes(ctx context.Context, venueID uuid.UUID, date time.Time) ([]int, error)
	VendorStats(ctx context.Context, vendorID uuid.UUID, today time.Time) (*VendorBookingStats, error)
}

// VenueReadStore resolves catalog summaries for availability responses.
type VenueReadStore interface {
	Summary(ctx context.Context, venueID uuid.UUID) (*VenueSummary, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	venues   VenueReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, venues VenueReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		venues:   venues,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := user.BookingResource{RequesterID: view.UserID, VendorID: view.VendorID}
	if !user.Can(user.OpViewBooking, actor, res) {
		return nil, errs.ErrUnauthorized
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.findByID(ctx, id)
}

func (q *bookingQueriesImpl) findByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID, page Page) (*PagedBookings, error) {
	if actor.ID != userID && !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}

	page = page.Normalize()
	items, total, err := q.bookings.FindByUserID(ctx, userID, page.Size, page.Offset())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return NewPagedBookings(items, page, total), nil
}

func (q *bookingQueriesImpl) ListByVendor(ctx context.Context, actor user.Actor, vendorID uuid.UUID, status *string, page Page) (*PagedBookings, error) {
	res := user.BookingResource{VendorID: vendorID}
	if !user.Can(user.OpViewVendorBookings, actor, res) {
		return nil, errs.ErrUnauthorized
	}

	page = page.Normalize()
	items, total, err := q.bookings.FindByVendorID(ctx, vendorID, status, page.Size, page.Offset())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return NewPagedBookings(items, page, total), nil
}

func (q *bookingQueriesImpl) ListByVenue(ctx context.Context, actor user.Actor, venueID uuid.UUID, page Page) (*PagedBookings, error) {
	summary, err := q.venueSummary(ctx, venueID)
	if err != nil {
		return nil, err
	}

	res := user.BookingResource{VendorID: summary.VendorID}
	if !user.Can(user.OpViewVendorBookings, actor, res) {
		return nil, errs.ErrUnauthorized
	}

	page = page.Normalize()
	items, total, err := q.bookings.FindByVenueID(ctx, venueID, page.Size, page.Offset())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return NewPagedBookings(items, page, total), nil
}

// IsDateAvailable answers the whole-day question: is at least one slot
// still free on that venue and date.
func (q *bookingQueriesImpl) IsDateAvailable(ctx context.Context, venueID uuid.UUID, date time.Time) (bool, error) {
	view, err := q.SlotAvailability(ctx, venueID, date)
	if err != nil {
		return false, err
	}
	return view.AvailableSlots > 0, nil
}

// IsTimeAvailable answers the single-timestamp probe legacy clients
// send. A midnight timestamp asks about the whole day. Any other clock
// time asks about the slot whose window covers it; times outside the
// bookable window are never available.
func (q *bookingQueriesImpl) IsTimeAvailable(ctx context.Context, venueID uuid.UUID, at time.Time) (bool, error) {
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	if at.Hour() == 0 && at.Minute() == 0 {
		return q.IsDateAvailable(ctx, venueID, day)
	}

	tod, err := booking.NewTimeOfDay(at.Hour(), at.Minute())
	if err != nil {
		return false, err
	}
	slot, ok := booking.SlotContaining(tod)
	if !ok {
		return false, nil
	}

	view, err := q.SlotAvailability(ctx, venueID, day)
	if err != nil {
		return false, err
	}
	return view.Slots[slot.Index()].Status == string(booking.SlotAvailable), nil
}

// SlotAvailability rebuilds the per-slot breakdown from live booking
// rows on every call. Cancelled and soft-deleted rows never count.
func (q *bookingQueriesImpl) SlotAvailability(ctx context.Context, venueID uuid.UUID, date time.Time) (*SlotAvailabilityView, error) {
	summary, err := q.venueSummary(ctx, venueID)
	if err != nil {
		return nil, err
	}

	taken, err := q.bookings.ActiveSlotIndexes(ctx, venueID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	takenSet := make(map[int]struct{}, len(taken))
	for _, idx := range taken {
		takenSet[idx] = struct{}{}
	}

	slots := make([]SlotEntry, 0, booking.TotalSlots())
	for _, s := range booking.AllSlots() {
		state := booking.SlotAvailable
		if _, ok := takenSet[s.Index()]; ok {
			state = booking.SlotBooked
		}
		slots = append(slots, SlotEntry{
			SlotIndex: s.Index(),
			StartTime: s.Start().String(),
			EndTime:   s.End().String(),
			Label:     s.Label(),
			Status:    string(state),
		})
	}

	available := summary.TotalSlots - len(taken)
	if available < 0 {
		available = 0
	}

	return &SlotAvailabilityView{
		VenueID:        summary.ID,
		VenueTitle:     summary.Title,
		Date:           date,
		TotalSlots:     summary.TotalSlots,
		BookedSlots:    len(taken),
		AvailableSlots: available,
		Slots:          slots,
	}, nil
}

func (q *bookingQueriesImpl) VendorStats(ctx context.Context, actor user.Actor, vendorID uuid.UUID) (*VendorBookingStats, error) {
	res := user.BookingResource{VendorID: vendorID}
	if !user.Can(user.OpViewVendorStats, actor, res) {
		return nil, errs.ErrUnauthorized
	}

	stats, err := q.bookings.VendorStats(ctx, vendorID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return stats, nil
}

func (q *bookingQueriesImpl) venueSummary(ctx context.Context, venueID uuid.UUID) (*VenueSummary, error) {
	summary, err := q.venues.Summary(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVenueNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return summary, nil
}

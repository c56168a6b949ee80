package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra/db"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Venues() VenueRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups command handlers need before mutating.
// They rebuild full domain entities so transition methods can run on
// them inside the same transaction.
type CommandReads interface {
	VenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	SlotTaken(ctx context.Context, venueID uuid.UUID, date time.Time, slotIndex int) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type VenueRepository interface {
	IncrementTimesBooked(ctx context.Context, venueID uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
	"venue-booking/internal/infra/repository"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/common/builder"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The transactional ports are faked by hand so the tests can observe
// exactly which writes a command issued without a database.

type stubReads struct {
	venue      *venue.Venue
	venueErr   error
	booking    *booking.Booking
	bookingErr error
	slotTaken  bool
	slotErr    error
}

func (s *stubReads) VenueByID(_ context.Context, _ uuid.UUID) (*venue.Venue, error) {
	return s.venue, s.venueErr
}

func (s *stubReads) BookingByID(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
	return s.booking, s.bookingErr
}

func (s *stubReads) SlotTaken(_ context.Context, _ uuid.UUID, _ time.Time, _ int) (bool, error) {
	return s.slotTaken, s.slotErr
}

type stubBookings struct {
	createErrs []error // consumed one per Create call
	created    []*booking.Booking
	updated    []*booking.Booking
	updateErr  error
}

func (s *stubBookings) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		if err != nil {
			return uuid.Nil, err
		}
	}
	s.created = append(s.created, b)
	return b.ID(), nil
}

func (s *stubBookings) Update(_ context.Context, b *booking.Booking) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, b)
	return nil
}

type stubVenues struct {
	incremented []uuid.UUID
}

func (s *stubVenues) IncrementTimesBooked(_ context.Context, venueID uuid.UUID) error {
	s.incremented = append(s.incremented, venueID)
	return nil
}

type stubUsers struct{}

func (s *stubUsers) UpdateLastLogin(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return nil
}

type fakeTx struct {
	bookings *stubBookings
	venues   *stubVenues
	reads    *stubReads
}

func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Venues() shared.VenueRepository     { return t.venues }
func (t *fakeTx) Users() shared.UserRepository       { return &stubUsers{} }
func (t *fakeTx) Reads() shared.CommandReads         { return t.reads }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fixedCodes struct {
	suffix string
}

func (f *fixedCodes) Suffix() string { return f.suffix }

type commandsFixture struct {
	reads    *stubReads
	bookings *stubBookings
	venues   *stubVenues
	queries  *queriesmock.MockBookingQueries
	clk      *clock.MockClock
	uc       commands.BookingCommands
}

func newCommandsFixture(t *testing.T) *commandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &commandsFixture{
		reads:    &stubReads{},
		bookings: &stubBookings{},
		venues:   &stubVenues{},
		queries:  queriesmock.NewMockBookingQueries(ctrl),
		clk:      clock.NewMockClock(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)),
	}

	uow := &fakeUoW{tx: &fakeTx{bookings: f.bookings, venues: f.venues, reads: f.reads}}
	factory := booking.NewFactory(f.clk, &fixedCodes{suffix: "A1B2"})
	f.uc = commands.NewBookingUseCase(uow, factory, f.queries, f.clk)
	return f
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows, infra.KindNotFound)
}

func duplicateKeyErr(constraint string) error {
	return infra.WrapRepoErr("insert booking", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
	})
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		f := newCommandsFixture(t)
		v := builder.NewVenueBuilder()
		f.reads.venue = v.BuildDomain()

		b := builder.NewBookingBuilder()
		b.VenueID = v.ID
		params := b.BuildCreateParams()
		actor := user.Actor{ID: b.UserID, Role: user.RoleUser}

		view := b.BuildView()
		f.queries.EXPECT().
			GetByIDSystem(ctx, gomock.Any()).
			Return(view, nil)

		got, err := f.uc.Create(ctx, actor, params)
		require.NoError(t, err)
		assert.Equal(t, view, got)

		require.Len(t, f.bookings.created, 1)
		created := f.bookings.created[0]
		assert.Equal(t, actor.ID, created.UserID())
		assert.Equal(t, v.VendorID, created.VendorID())
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, []uuid.UUID{v.ID}, f.venues.incremented)
	})

	t.Run("unit price falls back to the venue price", func(t *testing.T) {
		f := newCommandsFixture(t)
		v := builder.NewVenueBuilder().WithPrice(30_000_000)
		f.reads.venue = v.BuildDomain()

		b := builder.NewBookingBuilder()
		b.VenueID = v.ID
		params := b.BuildCreateParams()
		params.UnitPrice = nil

		f.queries.EXPECT().
			GetByIDSystem(ctx, gomock.Any()).
			Return(b.BuildView(), nil)

		_, err := f.uc.Create(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, params)
		require.NoError(t, err)

		require.Len(t, f.bookings.created, 1)
		assert.Equal(t, int64(30_000_000), f.bookings.created[0].UnitPrice().Amount())
	})

	t.Run("missing booking date", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venue = builder.NewVenueBuilder().BuildDomain()
		params := builder.NewBookingBuilder().BuildCreateParams()
		params.BookingDate = nil

		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, errs.ErrMissingBookingDate)
		assert.Empty(t, f.bookings.created)
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venueErr = notFoundErr()

		params := builder.NewBookingBuilder().BuildCreateParams()
		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, errs.ErrVenueUnavailable)
	})

	t.Run("venue gate wins over scheduling errors", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venueErr = notFoundErr()

		params := builder.NewBookingBuilder().BuildCreateParams()
		params.BookingDate = nil
		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, errs.ErrVenueUnavailable)
	})

	t.Run("venue not accepting bookings", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venue = builder.NewVenueBuilder().WithInactive().BuildDomain()

		params := builder.NewBookingBuilder().BuildCreateParams()
		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, errs.ErrVenueUnavailable)
		assert.Empty(t, f.bookings.created)
	})

	t.Run("slot already taken on the pre-check", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venue = builder.NewVenueBuilder().BuildDomain()
		f.reads.slotTaken = true

		params := builder.NewBookingBuilder().BuildCreateParams()
		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyBooked)
		assert.Empty(t, f.bookings.created)
		assert.Empty(t, f.venues.incremented)
	})

	t.Run("concurrent insert loses to the slot index", func(t *testing.T) {
		// Pre-check passed but the partial unique index caught a racing row.
		f := newCommandsFixture(t)
		f.reads.venue = builder.NewVenueBuilder().BuildDomain()
		f.bookings.createErrs = []error{duplicateKeyErr(repository.UniqueConstraintActiveSlot)}

		params := builder.NewBookingBuilder().BuildCreateParams()
		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyBooked)
		assert.Empty(t, f.bookings.created)
	})

	t.Run("booking code collision is retried with a fresh code", func(t *testing.T) {
		f := newCommandsFixture(t)
		v := builder.NewVenueBuilder()
		f.reads.venue = v.BuildDomain()
		f.bookings.createErrs = []error{duplicateKeyErr(repository.UniqueConstraintBookingCode)}

		b := builder.NewBookingBuilder()
		b.VenueID = v.ID
		f.queries.EXPECT().
			GetByIDSystem(ctx, gomock.Any()).
			Return(b.BuildView(), nil)

		_, err := f.uc.Create(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, b.BuildCreateParams())
		require.NoError(t, err)
		require.Len(t, f.bookings.created, 1)
		// The failed attempt never bumped the counter.
		assert.Equal(t, []uuid.UUID{v.ID}, f.venues.incremented)
	})

	t.Run("code collisions eventually give up", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venue = builder.NewVenueBuilder().BuildDomain()
		collision := duplicateKeyErr(repository.UniqueConstraintBookingCode)
		f.bookings.createErrs = []error{collision, collision, collision, collision, collision}

		params := builder.NewBookingBuilder().BuildCreateParams()
		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		require.Error(t, err)
		assert.Empty(t, f.bookings.created)
	})

	t.Run("blank customer name is a validation error", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.venue = builder.NewVenueBuilder().BuildDomain()
		params := builder.NewBookingBuilder().BuildCreateParams()
		params.CustomerName = "   "

		_, err := f.uc.Create(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, params)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestBookingConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("vendor confirms a pending booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		vendorID := uuid.New()
		b := builder.NewBookingBuilder().WithVendor(vendorID)
		f.reads.booking = b.BuildDomain()

		view := b.WithStatus(booking.StatusConfirmed).BuildView()
		availability := &queries.SlotAvailabilityView{
			VenueID:        b.VenueID,
			TotalSlots:     4,
			BookedSlots:    1,
			AvailableSlots: 3,
		}
		f.queries.EXPECT().GetByIDSystem(ctx, b.ID).Return(view, nil)
		f.queries.EXPECT().SlotAvailability(ctx, b.VenueID, gomock.Any()).Return(availability, nil)

		got, err := f.uc.Confirm(ctx, user.Actor{ID: vendorID, Role: user.RoleVendor}, b.ID)
		require.NoError(t, err)

		expected := &commands.ConfirmResult{Booking: view, SlotAvailability: availability}
		if diff := cmp.Diff(expected, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ConfirmResult mismatch (-want +got):\n%s", diff)
		}

		require.Len(t, f.bookings.updated, 1)
		assert.Equal(t, booking.StatusConfirmed, f.bookings.updated[0].Status())
	})

	t.Run("confirming twice writes nothing the second time", func(t *testing.T) {
		f := newCommandsFixture(t)
		vendorID := uuid.New()
		b := builder.NewBookingBuilder().WithVendor(vendorID).WithStatus(booking.StatusConfirmed)
		f.reads.booking = b.BuildDomain()

		f.queries.EXPECT().GetByIDSystem(ctx, b.ID).Return(b.BuildView(), nil)
		f.queries.EXPECT().SlotAvailability(ctx, b.VenueID, gomock.Any()).
			Return(&queries.SlotAvailabilityView{VenueID: b.VenueID}, nil)

		_, err := f.uc.Confirm(ctx, user.Actor{ID: vendorID, Role: user.RoleVendor}, b.ID)
		require.NoError(t, err)
		assert.Empty(t, f.bookings.updated)
	})

	t.Run("the booking owner cannot confirm", func(t *testing.T) {
		f := newCommandsFixture(t)
		b := builder.NewBookingBuilder()
		f.reads.booking = b.BuildDomain()

		_, err := f.uc.Confirm(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, b.ID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Empty(t, f.bookings.updated)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.reads.bookingErr = notFoundErr()

		_, err := f.uc.Confirm(ctx, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBookingReject(t *testing.T) {
	ctx := context.Background()

	t.Run("vendor rejects with a reason", func(t *testing.T) {
		f := newCommandsFixture(t)
		vendorID := uuid.New()
		b := builder.NewBookingBuilder().WithVendor(vendorID)
		f.reads.booking = b.BuildDomain()

		view := b.WithStatus(booking.StatusCancelled).BuildView()
		f.queries.EXPECT().GetByIDSystem(ctx, b.ID).Return(view, nil)

		reason := "double booked offline"
		got, err := f.uc.Reject(ctx, user.Actor{ID: vendorID, Role: user.RoleVendor}, b.ID, &reason)
		require.NoError(t, err)
		assert.Equal(t, view, got)

		require.Len(t, f.bookings.updated, 1)
		assert.Equal(t, booking.StatusCancelled, f.bookings.updated[0].Status())
	})

	t.Run("the booking owner cannot reject", func(t *testing.T) {
		f := newCommandsFixture(t)
		b := builder.NewBookingBuilder()
		f.reads.booking = b.BuildDomain()

		_, err := f.uc.Reject(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, b.ID, nil)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestBookingComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("vendor completes a confirmed booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		vendorID := uuid.New()
		b := builder.NewBookingBuilder().WithVendor(vendorID).WithStatus(booking.StatusConfirmed)
		f.reads.booking = b.BuildDomain()

		view := b.WithStatus(booking.StatusCompleted).BuildView()
		f.queries.EXPECT().GetByIDSystem(ctx, b.ID).Return(view, nil)

		got, err := f.uc.Complete(ctx, user.Actor{ID: vendorID, Role: user.RoleVendor}, b.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
		require.Len(t, f.bookings.updated, 1)
	})

	t.Run("pending bookings cannot be completed", func(t *testing.T) {
		f := newCommandsFixture(t)
		vendorID := uuid.New()
		b := builder.NewBookingBuilder().WithVendor(vendorID)
		f.reads.booking = b.BuildDomain()

		_, err := f.uc.Complete(ctx, user.Actor{ID: vendorID, Role: user.RoleVendor}, b.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Empty(t, f.bookings.updated)
	})
}

func TestBookingCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels a pending booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		b := builder.NewBookingBuilder()
		f.reads.booking = b.BuildDomain()

		view := b.WithStatus(booking.StatusCancelled).BuildView()
		f.queries.EXPECT().GetByIDSystem(ctx, b.ID).Return(view, nil)

		got, err := f.uc.Cancel(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, b.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
		require.Len(t, f.bookings.updated, 1)
	})

	t.Run("the venue vendor cannot cancel on the customer's behalf", func(t *testing.T) {
		f := newCommandsFixture(t)
		vendorID := uuid.New()
		b := builder.NewBookingBuilder().WithVendor(vendorID)
		f.reads.booking = b.BuildDomain()

		_, err := f.uc.Cancel(ctx, user.Actor{ID: vendorID, Role: user.RoleVendor}, b.ID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("completed bookings cannot be cancelled", func(t *testing.T) {
		f := newCommandsFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		f.reads.booking = b.BuildDomain()

		_, err := f.uc.Cancel(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, b.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Empty(t, f.bookings.updated)
	})
}

func TestBookingDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner removes a cancelled booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled)
		f.reads.booking = b.BuildDomain()

		err := f.uc.Delete(ctx, user.Actor{ID: b.UserID, Role: user.RoleUser}, b.ID)
		require.NoError(t, err)
		require.Len(t, f.bookings.updated, 1)
		assert.True(t, f.bookings.updated[0].IsDeleted())
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		f := newCommandsFixture(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled)
		f.reads.booking = b.BuildDomain()

		err := f.uc.Delete(ctx, user.Actor{ID: uuid.New(), Role: user.RoleUser}, b.ID)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Empty(t, f.bookings.updated)
	})
}

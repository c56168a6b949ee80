package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
)

type VenueRepository struct {
	dbtx db.DBTX
}

func NewVenueRepository(dbtx db.DBTX) *VenueRepository {
	return &VenueRepository{dbtx: dbtx}
}

// IncrementTimesBooked bumps the denormalized booking counter. Runs in
// the same transaction as the booking insert so the counter cannot
// drift from the row count.
func (r *VenueRepository) IncrementTimesBooked(ctx context.Context, venueID uuid.UUID) error {
	query, args, err := db.Builder.
		Update("venues").
		Set("times_booked", squirrel.Expr("times_booked + 1")).
		Where(squirrel.Eq{"id": venueID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build venue counter update", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to increment venue booking counter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}

	return nil
}

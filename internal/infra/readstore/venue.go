package readstore

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
	"venue-booking/internal/usecase/queries"
)

type VenueReadStore struct {
	dbtx db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) *VenueReadStore {
	return &VenueReadStore{dbtx: dbtx}
}

func (r *VenueReadStore) Summary(ctx context.Context, venueID uuid.UUID) (*queries.VenueSummary, error) {
	query, args, err := db.Builder.
		Select("id", "vendor_id", "title", "total_slots").
		From("venues").
		Where(squirrel.Eq{"id": venueID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build venue summary query", err)
	}

	var summary queries.VenueSummary
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&summary.ID,
		&summary.VendorID,
		&summary.Title,
		&summary.TotalSlots,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue summary", err)
	}

	if summary.TotalSlots <= 0 {
		summary.TotalSlots = venue.DefaultTotalSlots
	}

	return &summary, nil
}

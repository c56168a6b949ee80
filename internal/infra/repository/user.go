package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
)

type UserRepository struct {
	dbtx db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{dbtx: dbtx}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	query, args, err := db.Builder.
		Update("users").
		Set("last_login", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build last login update", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}

	return nil
}

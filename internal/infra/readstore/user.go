package readstore

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/db"
	"venue-booking/internal/usecase/queries"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query, args, err := db.Builder.
		Select("id", "email", "name", "role", "is_active").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var view queries.AuthorizedUserView
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query, args, err := db.Builder.
		Select("id", "email", "name", "role", "is_active", "password_hash").
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user query", err)
	}

	var view queries.AuthorizedUserView
	var passwordHash string
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Role,
		&view.IsActive,
		&passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

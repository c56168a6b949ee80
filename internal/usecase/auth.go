package usecase

import (
	"context"

	"github.com/google/uuid"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/pkg/password"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	users       queries.UserReadStore
	userQueries queries.UserQueries
	uow         shared.UnitOfWork
	jwtService  *jwt.Service
	clock       clock.Clock
}

func NewAuthUseCase(
	users queries.UserReadStore,
	userQueries queries.UserQueries,
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	clk clock.Clock,
) AuthUseCase {
	return &authUseCaseImpl{
		users:       users,
		userQueries: userQueries,
		uow:         uow,
		jwtService:  jwtService,
		clock:       clk,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID, a.clock.Now())
	})
	if err != nil {
		return "", nil, err
	}

	return token, view, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.users.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	return a.userQueries.GetCurrentUser(ctx, userID)
}

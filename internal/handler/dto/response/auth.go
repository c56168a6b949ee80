package response

import (
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		Name:     v.Name,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         string
	role         Role
	active       bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// Reconstruct rebuilds a User from persisted state. It performs no
// validation; the row is trusted.
func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash string,
	name string,
	role Role,
	active bool,
	lastLogin *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		active:       active,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Name() string          { return u.name }
func (u *User) Role() Role            { return u.role }
func (u *User) IsActive() bool        { return u.active }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) Actor() Actor {
	return Actor{ID: u.id, Role: u.role}
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	fullName     FullName
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(fullName FullName, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(id uuid.UUID, fullName FullName, email Email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FullName() FullName   { return u.fullName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }

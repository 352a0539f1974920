//go:build unit || e2e

package builder

import (
	"shoestore-api/internal/domain/user"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	FullName     string
	Email        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		FullName:     "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewFullName(u.FullName)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

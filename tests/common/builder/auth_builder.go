//go:build unit || e2e

package builder

import (
	reqdto "shoestore-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	FullName string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		FullName: a.FullName,
		Email:    a.Email,
		Password: a.Password,
	}
}

package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidPassword  = errors.New("invalid password")
)

// HashCost stays at 12 so hashes issued before the rewrite keep verifying.
const HashCost = 12

func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), HashCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashed), nil
}

func ComparePassword(hashed, raw string) error {
	if hashed == "" || raw == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}

	return nil
}

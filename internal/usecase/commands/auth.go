package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"shoestore-api/internal/domain/user"
	"shoestore-api/internal/infra"
	"shoestore-api/internal/pkg/errs"
	"shoestore-api/internal/pkg/jwt"
	"shoestore-api/internal/pkg/mail"
	"shoestore-api/internal/pkg/password"
	"shoestore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrInvalidResetToken      = errors.New("invalid or expired reset token")
)

const resetTokenTTL = time.Hour

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Signup(ctx context.Context, fullName, email, rawPassword string) (*queries.AuthorizedUserView, *TokenPair, error)
	Login(ctx context.Context, creds user.Credentials) (*queries.AuthorizedUserView, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	userRepo  UserRepository
	userReads queries.UserReadStore
	tokens    ResetTokenStore
	jwtSvc    *jwt.Service
	mailer    mail.Mailer
}

func NewAuthCommands(
	userRepo UserRepository,
	userReads queries.UserReadStore,
	tokens ResetTokenStore,
	jwtSvc *jwt.Service,
	mailer mail.Mailer,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:  userRepo,
		userReads: userReads,
		tokens:    tokens,
		jwtSvc:    jwtSvc,
		mailer:    mailer,
	}
}

// Signup registers a customer account and signs them in immediately. New
// accounts are always customers; admin accounts are provisioned out of band.
func (a *authCommandsImpl) Signup(ctx context.Context, fullName, email, rawPassword string) (*queries.AuthorizedUserView, *TokenPair, error) {
	name, err := user.NewFullName(fullName)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, nil, errs.Wrap(err, "hashing password")
	}

	entity := user.NewUser(name, addr, hash, user.RoleCustomer)
	id, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, nil, ErrEmailAlreadyRegistered
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := a.userReads.FindByID(ctx, id)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	pair, err := a.issueTokens(entity.ID(), entity.Role())
	if err != nil {
		return nil, nil, err
	}
	return view, pair, nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (a *authCommandsImpl) Login(ctx context.Context, creds user.Credentials) (*queries.AuthorizedUserView, *TokenPair, error) {
	view, hash, err := a.userReads.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, errs.Wrap(err, "stored role is invalid")
	}

	pair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, nil, err
	}
	return view, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The stored account
// is re-read so a role change takes effect at the next rotation.
func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	view, err := a.userReads.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}
	return a.issueTokens(view.ID, role)
}

// RequestPasswordReset issues a single-use token and mails it to the account.
// An unknown email returns success without sending anything, so the endpoint
// cannot be used to discover which addresses are registered.
func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) error {
	view, _, err := a.userReads.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := newResetToken()
	if err != nil {
		return errs.Wrap(err, "generating reset token")
	}
	if err := a.tokens.Put(ctx, token, view.ID, resetTokenTTL); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := a.mailer.SendPasswordReset(ctx, view.Email, view.FullName, token); err != nil {
		return errs.Wrap(err, "sending reset mail")
	}
	return nil
}

// ConfirmPasswordReset consumes the token and stores the new password hash.
// Consumption happens first; a failed update burns the token rather than
// leaving it replayable.
func (a *authCommandsImpl) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	userID, err := a.tokens.Take(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidResetToken
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "hashing password")
	}

	if err := a.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwtSvc.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "signing access token")
	}
	refresh, err := a.jwtSvc.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "signing refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
)

const minPasswordLen = 8

type Credentials struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthSession is the result of a successful register or login: the user
// (password hash stripped) plus a fresh token pair.
type AuthSession struct {
	User   user.User
	Tokens TokenPair
}

type AuthUsecase interface {
	Register(ctx context.Context, creds Credentials) (AuthSession, error)
	Login(ctx context.Context, creds Credentials) (AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, creds Credentials) (AuthSession, error) {
	email := normalizeEmail(creds.Email)
	if email == "" || len(strings.TrimSpace(creds.Password)) < minPasswordLen {
		return AuthSession{}, ErrInvalidInput
	}

	taken, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthSession{}, ErrInternal
	}
	if taken {
		return AuthSession{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthSession{}, ErrInternal
	}

	usr := user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := u.users.CreateUser(ctx, usr); err != nil {
		// A concurrent registration can slip past the existence check; the
		// unique index catches it and the caller gets the conflict, not a 500.
		if taken, exErr := u.users.ExistsByEmail(ctx, email); exErr == nil && taken {
			return AuthSession{}, ErrEmailTaken
		}
		return AuthSession{}, ErrInternal
	}

	created, err := u.users.GetUserByID(ctx, usr.ID)
	if err != nil {
		return AuthSession{}, ErrInternal
	}
	return u.openSession(created)
}

func (u *Auth) Login(ctx context.Context, creds Credentials) (AuthSession, error) {
	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return AuthSession{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return AuthSession{}, ErrInvalidCredentials
		}
		return AuthSession{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(creds.Password)) != nil {
		return AuthSession{}, ErrInvalidCredentials
	}
	return u.openSession(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return u.issueTokens(usr)
}

func (u *Auth) openSession(usr user.User) (AuthSession, error) {
	tokens, err := u.issueTokens(usr)
	if err != nil {
		return AuthSession{}, err
	}
	usr.PasswordHash = ""
	return AuthSession{User: usr, Tokens: tokens}, nil
}

func (u *Auth) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

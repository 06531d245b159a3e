package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"

	"github.com/google/uuid"
)

type fakeUsers struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (f *fakeUsers) CreateUser(ctx context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUsers) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func newAuthFixture(users user.Repository) *Auth {
	return NewAuthUsecase(users, jwt.NewHMACService("access", "refresh", time.Hour, 24*time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUsers()
	u := newAuthFixture(users)

	session, err := u.Register(context.Background(), Credentials{Email: " Dev@Example.com ", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if session.User.Email != "dev@example.com" {
		t.Fatalf("email not normalized: %q", session.User.Email)
	}
	if session.User.PasswordHash != "" {
		t.Fatal("password hash must be stripped from the session")
	}
	if session.Tokens.AccessToken == "" || session.Tokens.RefreshToken == "" {
		t.Fatalf("missing tokens: %+v", session.Tokens)
	}

	login, err := u.Login(context.Background(), Credentials{Email: "dev@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != session.User.ID {
		t.Fatalf("login returned a different user: %v vs %v", login.User.ID, session.User.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	u := newAuthFixture(newFakeUsers())

	if _, err := u.Register(context.Background(), Credentials{Email: "", Password: "hunter2hunter2"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty email: err = %v, want ErrInvalidInput", err)
	}
	if _, err := u.Register(context.Background(), Credentials{Email: "a@b.com", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: err = %v, want ErrInvalidInput", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	u := newAuthFixture(users)

	creds := Credentials{Email: "dev@example.com", Password: "hunter2hunter2"}
	if _, err := u.Register(context.Background(), creds); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := u.Register(context.Background(), creds); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUsers()
	u := newAuthFixture(users)

	if _, err := u.Register(context.Background(), Credentials{Email: "dev@example.com", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := u.Login(context.Background(), Credentials{Email: "dev@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := u.Login(context.Background(), Credentials{Email: "nobody@example.com", Password: "hunter2hunter2"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	users := newFakeUsers()
	u := newAuthFixture(users)

	session, err := u.Register(context.Background(), Credentials{Email: "dev@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	pair, err := u.Refresh(context.Background(), session.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("refresh must mint a full pair: %+v", pair)
	}

	// An access token is not accepted in place of a refresh token.
	if _, err := u.Refresh(context.Background(), session.Tokens.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("err = %v, want ErrInvalidRefreshToken", err)
	}
	if _, err := u.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("blank token: err = %v, want ErrUnauthorized", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

func TestGetProfile(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{uid: {
		UserID:        uid,
		PreferredRole: "backend engineer",
	}}}

	u := NewProfileUsecase(profiles)
	got, err := u.GetProfile(context.Background(), uid)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.PreferredRole != "backend engineer" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := u.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := u.GetProfile(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("nil uuid: err = %v, want ErrUnauthorized", err)
	}
}

func TestUpdateProfileMergesFields(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{uid: {
		UserID:        uid,
		PreferredRole: "backend engineer",
		Skills:        []string{"go"},
		Location:      "berlin",
	}}}

	role := "  data engineer  "
	u := NewProfileUsecase(profiles)
	got, err := u.UpdateProfile(context.Background(), uid, UpdateProfileInput{
		PreferredRole: &role,
		Skills:        []string{" python ", "", "sql"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.PreferredRole != "data engineer" {
		t.Fatalf("role not trimmed and updated: %+v", got)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "python" || got.Skills[1] != "sql" {
		t.Fatalf("skills not cleaned: %v", got.Skills)
	}
	if got.Location != "berlin" {
		t.Fatalf("untouched field must survive, got %q", got.Location)
	}
}

func TestUpdateProfileCreatesWhenAbsent(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{}}

	loc := "remote"
	u := NewProfileUsecase(profiles)
	got, err := u.UpdateProfile(context.Background(), uid, UpdateProfileInput{Location: &loc})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.UserID != uid || got.Location != "remote" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if len(profiles.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(profiles.upserts))
	}
}

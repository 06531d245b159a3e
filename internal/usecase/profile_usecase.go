package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	PreferredRole *string
	Skills        []string
	Location      *string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error)
}

type Profile struct {
	profiles user.ProfileRepository
}

func NewProfileUsecase(profiles user.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrUserNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}

	current, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, user.ErrProfileNotFound) {
		return user.Profile{}, ErrInternal
	}
	current.UserID = userID

	if in.PreferredRole != nil {
		current.PreferredRole = strings.TrimSpace(*in.PreferredRole)
	}
	if in.Skills != nil {
		cleaned := make([]string, 0, len(in.Skills))
		for _, s := range in.Skills {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			cleaned = append(cleaned, s)
		}
		current.Skills = cleaned
	}
	if in.Location != nil {
		current.Location = strings.TrimSpace(*in.Location)
	}

	if err := u.profiles.Upsert(ctx, current); err != nil {
		return user.Profile{}, ErrInternal
	}

	updated, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return updated, nil
}

package dto

import (
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	PreferredRole string    `json:"preferred_role"`
	Skills        []string  `json:"skills"`
	Location      string    `json:"location"`
}

func FromProfile(p user.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:        p.UserID,
		PreferredRole: p.PreferredRole,
		Skills:        emptyIfNil(p.Skills),
		Location:      p.Location,
	}
}

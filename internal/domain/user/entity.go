package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the career profile the recommendation and skill-gap flows key
// off. Skills are stored as entered; validation happens at analysis time.
type Profile struct {
	UserID        uuid.UUID
	PreferredRole string
	Skills        []string
	Location      string
	UpdatedAt     time.Time
}

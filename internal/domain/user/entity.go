package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile holds the optional extended attributes of a user, distinct from
// credentials. It is created lazily on first edit or first friend action.
type Profile struct {
	UserID       uuid.UUID   `json:"userId"`
	Headline     string      `json:"headline"`
	Education    string      `json:"education"`
	Location     string      `json:"location"`
	City         string      `json:"city"`
	DOB          string      `json:"dob"`
	Contact      string      `json:"contact"`
	ProfileImage string      `json:"profileImage"`
	Friends      []uuid.UUID `json:"friends"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ZeroProfile is what callers see before a profile record exists.
func ZeroProfile(userID uuid.UUID) Profile {
	return Profile{UserID: userID, Friends: []uuid.UUID{}}
}

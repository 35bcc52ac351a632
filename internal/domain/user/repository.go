package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")

	ErrProfileNotFound = errors.New("profile not found")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]Profile, error)
	Upsert(ctx context.Context, p Profile) (Profile, error)

	// AddFriend inserts friendID into owner's friend set if absent,
	// creating the profile row when missing. One side of the symmetric
	// relation; callers issue it once per direction.
	AddFriend(ctx context.Context, ownerID, friendID uuid.UUID) error

	// RemoveFriend removes friendID from owner's friend set. Removing an
	// absent friendship (or from a missing profile) is a no-op.
	RemoveFriend(ctx context.Context, ownerID, friendID uuid.UUID) error
}

package social

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mitronet/internal/domain/user"
)

var (
	ErrSelfFriend   = errors.New("cannot add yourself as friend")
	ErrUserNotFound = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

type Connection struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	ProfileImg string    `json:"profileImg"`
}

type ConnectionsView struct {
	Friends  []Connection `json:"friends"`
	AllUsers []Connection `json:"allUsers"`
}

type SocialUsecase interface {
	AddFriend(ctx context.Context, viewerID, targetID uuid.UUID) error
	RemoveFriend(ctx context.Context, viewerID, targetID uuid.UUID) error
	Connections(ctx context.Context, viewerID uuid.UUID) (ConnectionsView, error)
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

// AddFriend records the symmetric relation with two idempotent add-if-absent
// writes, creating missing profiles on either side. There is no cross-record
// transaction; a crash between the writes leaves an asymmetric friendship
// that a re-issued add or remove repairs.
func (s *Service) AddFriend(ctx context.Context, viewerID, targetID uuid.UUID) error {
	if viewerID == targetID {
		return ErrSelfFriend
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}

	if err := s.profiles.AddFriend(ctx, viewerID, targetID); err != nil {
		return ErrInternal
	}
	if err := s.profiles.AddFriend(ctx, targetID, viewerID); err != nil {
		return ErrInternal
	}
	return nil
}

// RemoveFriend is the symmetric removal; removing an absent friendship
// succeeds as a no-op.
func (s *Service) RemoveFriend(ctx context.Context, viewerID, targetID uuid.UUID) error {
	if err := s.profiles.RemoveFriend(ctx, viewerID, targetID); err != nil {
		return ErrInternal
	}
	if err := s.profiles.RemoveFriend(ctx, targetID, viewerID); err != nil {
		return ErrInternal
	}
	return nil
}

// Connections resolves the viewer's friend set to user records and adds
// every other registered user for discovery. Friend ids that no longer
// resolve are skipped.
func (s *Service) Connections(ctx context.Context, viewerID uuid.UUID) (ConnectionsView, error) {
	friendIDs := []uuid.UUID{}
	p, err := s.profiles.GetByUserID(ctx, viewerID)
	if err != nil {
		if !errors.Is(err, user.ErrProfileNotFound) {
			return ConnectionsView{}, ErrInternal
		}
	} else {
		friendIDs = p.Friends
	}

	friends, err := s.users.GetByIDs(ctx, friendIDs)
	if err != nil {
		return ConnectionsView{}, ErrInternal
	}

	all, err := s.users.ListAll(ctx)
	if err != nil {
		return ConnectionsView{}, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(all))
	for _, u := range all {
		ids = append(ids, u.ID)
	}
	profiles, err := s.profiles.GetByUserIDs(ctx, ids)
	if err != nil {
		return ConnectionsView{}, ErrInternal
	}
	avatars := make(map[uuid.UUID]string, len(profiles))
	for _, pr := range profiles {
		avatars[pr.UserID] = pr.ProfileImage
	}

	view := ConnectionsView{
		Friends:  make([]Connection, 0, len(friends)),
		AllUsers: make([]Connection, 0, len(all)),
	}
	for _, u := range friends {
		view.Friends = append(view.Friends, toConnection(u, avatars))
	}
	for _, u := range all {
		if u.ID == viewerID {
			continue
		}
		view.AllUsers = append(view.AllUsers, toConnection(u, avatars))
	}
	return view, nil
}

func toConnection(u user.User, avatars map[uuid.UUID]string) Connection {
	return Connection{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfileImg: avatars[u.ID],
	}
}

package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mitronet/internal/domain/user"
)

var ErrInternal = errors.New("internal error")

type UpdateInput struct {
	Headline  string
	Education string
	Location  string
	City      string
	DOB       string
	Contact   string

	// ProfileImage is the stored filename of a freshly uploaded image;
	// empty means keep the current one.
	ProfileImage string
}

type View struct {
	User    user.User    `json:"user"`
	Profile user.Profile `json:"profile"`
}

type ProfileUsecase interface {
	Get(ctx context.Context, viewerID uuid.UUID) (View, error)
	Update(ctx context.Context, viewerID uuid.UUID, in UpdateInput) (user.Profile, error)
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

// Get returns the viewer's user record and profile. A profile that does
// not exist yet is reported as a zero-valued one, never as an error.
func (s *Service) Get(ctx context.Context, viewerID uuid.UUID) (View, error) {
	u, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		return View{}, ErrInternal
	}
	u.PasswordHash = ""

	p, err := s.profiles.GetByUserID(ctx, viewerID)
	if err != nil {
		if !errors.Is(err, user.ErrProfileNotFound) {
			return View{}, ErrInternal
		}
		p = user.ZeroProfile(viewerID)
	}

	return View{User: u, Profile: p}, nil
}

// Update upserts the viewer's profile attributes.
func (s *Service) Update(ctx context.Context, viewerID uuid.UUID, in UpdateInput) (user.Profile, error) {
	p, err := s.profiles.Upsert(ctx, user.Profile{
		UserID:       viewerID,
		Headline:     in.Headline,
		Education:    in.Education,
		Location:     in.Location,
		City:         in.City,
		DOB:          in.DOB,
		Contact:      in.Contact,
		ProfileImage: in.ProfileImage,
	})
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

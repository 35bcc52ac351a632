package feed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mitronet/internal/domain/post"
	"mitronet/internal/domain/user"
)

var ErrInternal = errors.New("internal error")

// Post is a feed entry: a post joined with its author's display name and
// current avatar.
type Post struct {
	ID         uuid.UUID      `json:"id"`
	AuthorID   uuid.UUID      `json:"userId"`
	FullName   string         `json:"fullName"`
	ProfileImg string         `json:"profileImg"`
	Content    string         `json:"content"`
	Likes      []uuid.UUID    `json:"likes"`
	Comments   []post.Comment `json:"comments"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type Contact struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName"`
	ProfileImg string    `json:"profileImg"`
}

type Viewer struct {
	ID         uuid.UUID    `json:"id"`
	FullName   string       `json:"fullName"`
	ProfileImg string       `json:"profileImg"`
	Profile    user.Profile `json:"profile"`
}

type View struct {
	User     Viewer    `json:"user"`
	Posts    []Post    `json:"posts"`
	Contacts []Contact `json:"contacts"`
}

type FeedUsecase interface {
	Feed(ctx context.Context, viewerID uuid.UUID) (View, error)
	Posts(ctx context.Context, viewerID uuid.UUID) (View, error)
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
	posts    post.Repository
}

func NewService(users user.Repository, profiles user.ProfileRepository, posts post.Repository) *Service {
	return &Service{users: users, profiles: profiles, posts: posts}
}

// Feed assembles the denormalized home view: every post newest first with
// author name and avatar, the viewer's profile, and the contact list of
// all other users. Any store failure surfaces as a generic error with no
// partial results.
func (s *Service) Feed(ctx context.Context, viewerID uuid.UUID) (View, error) {
	view, err := s.Posts(ctx, viewerID)
	if err != nil {
		return View{}, err
	}

	all, err := s.users.ListAll(ctx)
	if err != nil {
		return View{}, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(all))
	for _, u := range all {
		ids = append(ids, u.ID)
	}
	avatars, err := s.avatarsFor(ctx, ids)
	if err != nil {
		return View{}, ErrInternal
	}

	contacts := make([]Contact, 0, len(all))
	for _, u := range all {
		if u.ID == viewerID {
			continue
		}
		contacts = append(contacts, Contact{
			ID:         u.ID,
			FullName:   u.FullName,
			ProfileImg: avatars[u.ID],
		})
	}
	view.Contacts = contacts

	return view, nil
}

// Posts assembles the post list plus the viewer summary, without the
// contact list.
func (s *Service) Posts(ctx context.Context, viewerID uuid.UUID) (View, error) {
	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		return View{}, ErrInternal
	}

	viewerProfile, err := s.profiles.GetByUserID(ctx, viewerID)
	if err != nil {
		if !errors.Is(err, user.ErrProfileNotFound) {
			return View{}, ErrInternal
		}
		viewerProfile = user.ZeroProfile(viewerID)
	}

	posts, err := s.posts.ListAllDesc(ctx)
	if err != nil {
		return View{}, ErrInternal
	}

	authorIDs := make([]uuid.UUID, 0, len(posts))
	seen := map[uuid.UUID]struct{}{}
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; ok {
			continue
		}
		seen[p.AuthorID] = struct{}{}
		authorIDs = append(authorIDs, p.AuthorID)
	}

	authors, err := s.users.GetByIDs(ctx, authorIDs)
	if err != nil {
		return View{}, ErrInternal
	}
	names := make(map[uuid.UUID]string, len(authors))
	for _, u := range authors {
		names[u.ID] = u.FullName
	}

	avatars, err := s.avatarsFor(ctx, authorIDs)
	if err != nil {
		return View{}, ErrInternal
	}

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, Post{
			ID:         p.ID,
			AuthorID:   p.AuthorID,
			FullName:   names[p.AuthorID],
			ProfileImg: avatars[p.AuthorID],
			Content:    p.Content,
			Likes:      p.Likes,
			Comments:   p.Comments,
			CreatedAt:  p.CreatedAt,
		})
	}

	return View{
		User: Viewer{
			ID:         viewer.ID,
			FullName:   viewer.FullName,
			ProfileImg: viewerProfile.ProfileImage,
			Profile:    viewerProfile,
		},
		Posts: out,
	}, nil
}

func (s *Service) avatarsFor(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	profiles, err := s.profiles.GetByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(profiles))
	for _, p := range profiles {
		out[p.UserID] = p.ProfileImage
	}
	return out, nil
}

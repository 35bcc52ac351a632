package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "mitronet/internal/domain/post"
	"mitronet/internal/session"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotPostAuthor   = errors.New("not the post author")
	ErrNotCommentOwner = errors.New("not the comment author")
	ErrEmptyContent    = errors.New("content is required")
	ErrEmptyComment    = errors.New("comment cannot be empty")
	ErrInternal        = errors.New("internal error")
)

type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

type PostUsecase interface {
	Create(ctx context.Context, author session.Claims, content string) (domain.Post, error)
	ToggleLike(ctx context.Context, viewerID, postID uuid.UUID) (LikeResult, error)
	AddComment(ctx context.Context, author session.Claims, postID uuid.UUID, text string) (domain.Comment, error)
	Delete(ctx context.Context, viewerID, postID uuid.UUID) error
	DeleteComment(ctx context.Context, viewerID, postID, commentID uuid.UUID) error
}

type Service struct {
	posts domain.Repository
	now   func() time.Time
}

func NewService(posts domain.Repository) *Service {
	return &Service{posts: posts, now: time.Now}
}

func (s *Service) Create(ctx context.Context, author session.Claims, content string) (domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Post{}, ErrEmptyContent
	}

	p := domain.Post{
		ID:        uuid.New(),
		AuthorID:  author.UserID,
		Content:   content,
		Likes:     []uuid.UUID{},
		Comments:  []domain.Comment{},
		CreatedAt: s.now().UTC(),
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return domain.Post{}, ErrInternal
	}
	return p, nil
}

// ToggleLike flips the viewer's membership in the like set and reports
// the resulting state. Fetch-mutate-write on a single post row.
func (s *Service) ToggleLike(ctx context.Context, viewerID, postID uuid.UUID) (LikeResult, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LikeResult{}, ErrPostNotFound
		}
		return LikeResult{}, ErrInternal
	}

	liked := p.LikedBy(viewerID)
	if liked {
		likes := make([]uuid.UUID, 0, len(p.Likes))
		for _, id := range p.Likes {
			if id != viewerID {
				likes = append(likes, id)
			}
		}
		p.Likes = likes
	} else {
		p.Likes = append(p.Likes, viewerID)
	}

	if err := s.posts.UpdateLikes(ctx, postID, p.Likes); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LikeResult{}, ErrPostNotFound
		}
		return LikeResult{}, ErrInternal
	}

	return LikeResult{Liked: !liked, LikesCount: len(p.Likes)}, nil
}

// AddComment appends a comment capturing the caller's id and a display
// name snapshot taken from the session claims.
func (s *Service) AddComment(ctx context.Context, author session.Claims, postID uuid.UUID, text string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, ErrEmptyComment
	}

	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Comment{}, ErrPostNotFound
		}
		return domain.Comment{}, ErrInternal
	}

	c := domain.Comment{
		ID:        uuid.New(),
		UserID:    author.UserID,
		UserName:  author.FullName,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	p.Comments = append(p.Comments, c)

	if err := s.posts.UpdateComments(ctx, postID, p.Comments); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Comment{}, ErrPostNotFound
		}
		return domain.Comment{}, ErrInternal
	}
	return c, nil
}

// Delete removes a post with its embedded likes and comments. Only the
// author may delete; anyone else is rejected as forbidden so callers can
// tell "exists but not yours" from "absent".
func (s *Service) Delete(ctx context.Context, viewerID, postID uuid.UUID) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrPostNotFound
		}
		return ErrInternal
	}
	if p.AuthorID != viewerID {
		return ErrNotPostAuthor
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrPostNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *Service) DeleteComment(ctx context.Context, viewerID, postID, commentID uuid.UUID) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrPostNotFound
		}
		return ErrInternal
	}

	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrCommentNotFound
	}
	if p.Comments[idx].UserID != viewerID {
		return ErrNotCommentOwner
	}

	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)

	if err := s.posts.UpdateComments(ctx, postID, p.Comments); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrPostNotFound
		}
		return ErrInternal
	}
	return nil
}

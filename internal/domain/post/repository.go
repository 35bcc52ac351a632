package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("post not found")

type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)

	// ListAllDesc returns every post newest first; ties fall back to the
	// store's secondary order.
	ListAllDesc(ctx context.Context) ([]Post, error)

	// UpdateLikes and UpdateComments write back the embedded collections
	// of a single post row. Callers fetch, mutate in memory, then write;
	// concurrent writers against the same post can lose updates, matching
	// the per-document atomicity model.
	UpdateLikes(ctx context.Context, id uuid.UUID, likes []uuid.UUID) error
	UpdateComments(ctx context.Context, id uuid.UUID, comments []Comment) error

	Delete(ctx context.Context, id uuid.UUID) error
}

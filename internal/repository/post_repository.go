package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"mitronet/internal/database"
	"mitronet/internal/domain/post"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresPostRepository struct {
	db database.DB
}

func NewPostgresPostRepository(db database.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(ctx context.Context, p post.Post) error {
	comments, err := marshalComments(p.Comments)
	if err != nil {
		return err
	}
	likes := p.Likes
	if likes == nil {
		likes = []uuid.UUID{}
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO posts (id, author_id, content, likes, comments, created_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
		p.ID, p.AuthorID, p.Content, likes, comments, p.CreatedAt,
	)
	return err
}

func (r *PostgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, author_id, content, likes, comments, created_at
		 FROM posts WHERE id = $1`,
		id,
	)
	return scanPost(row)
}

func (r *PostgresPostRepository) ListAllDesc(ctx context.Context) ([]post.Post, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, author_id, content, likes, comments, created_at
		 FROM posts ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostRepository) UpdateLikes(ctx context.Context, id uuid.UUID, likes []uuid.UUID) error {
	if likes == nil {
		likes = []uuid.UUID{}
	}
	affected, err := r.db.Exec(ctx, `UPDATE posts SET likes = $2 WHERE id = $1`, id, likes)
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) UpdateComments(ctx context.Context, id uuid.UUID, comments []post.Comment) error {
	b, err := marshalComments(comments)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx, `UPDATE posts SET comments = $2::jsonb WHERE id = $1`, id, b)
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrNotFound
	}
	return nil
}

func marshalComments(comments []post.Comment) (string, error) {
	if comments == nil {
		comments = []post.Comment{}
	}
	b, err := json.Marshal(comments)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type postRow interface {
	Scan(dest ...any) error
}

func scanPost(row postRow) (post.Post, error) {
	var p post.Post
	var comments []byte
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Content, &p.Likes, &comments, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	if p.Likes == nil {
		p.Likes = []uuid.UUID{}
	}
	p.Comments = []post.Comment{}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &p.Comments); err != nil {
			return post.Post{}, err
		}
	}
	return p, nil
}

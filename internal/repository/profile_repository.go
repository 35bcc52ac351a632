package repository

import (
	"context"
	"database/sql"
	"errors"

	"mitronet/internal/database"
	"mitronet/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `user_id, headline, education, location, city, dob, contact, profile_image, friends, created_at, updated_at`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]user.Profile, error) {
	if len(userIDs) == 0 {
		return []user.Profile{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = ANY($1)`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Profile, 0)
	for rows.Next() {
		var p user.Profile
		if err := rows.Scan(
			&p.UserID, &p.Headline, &p.Education, &p.Location, &p.City,
			&p.DOB, &p.Contact, &p.ProfileImage, &p.Friends, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (user_id, headline, education, location, city, dob, contact, profile_image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			headline = excluded.headline,
			education = excluded.education,
			location = excluded.location,
			city = excluded.city,
			dob = excluded.dob,
			contact = excluded.contact,
			profile_image = CASE WHEN excluded.profile_image = '' THEN profiles.profile_image ELSE excluded.profile_image END,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.UserID, p.Headline, p.Education, p.Location, p.City, p.DOB, p.Contact, p.ProfileImage,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) AddFriend(ctx context.Context, ownerID, friendID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, friends)
		 VALUES ($1, ARRAY[$2]::uuid[])
		 ON CONFLICT (user_id) DO UPDATE SET
			friends = CASE
				WHEN profiles.friends @> ARRAY[$2]::uuid[] THEN profiles.friends
				ELSE array_append(profiles.friends, $2)
			END,
			updated_at = now()`,
		ownerID, friendID,
	)
	return err
}

func (r *PostgresProfileRepository) RemoveFriend(ctx context.Context, ownerID, friendID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET friends = array_remove(friends, $2), updated_at = now()
		 WHERE user_id = $1`,
		ownerID, friendID,
	)
	return err
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	if err := row.Scan(
		&p.UserID, &p.Headline, &p.Education, &p.Location, &p.City,
		&p.DOB, &p.Contact, &p.ProfileImage, &p.Friends, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mitronet/internal/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Claims is the minimal identity carried by a session. It deliberately
// excludes the password hash and any other credential material.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session store unavailable: %w", err)
	}

	if ttl <= 0 {
		ttl = 14 * 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}, nil
}

func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Create stores the claims under a fresh opaque token and returns it.
func (s *Store) Create(ctx context.Context, claims Claims) (string, error) {
	token := uuid.NewString()

	b, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, keyPrefix+token, b, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrNotFound
	}
	b, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Claims{}, ErrNotFound
		}
		return Claims{}, err
	}
	var claims Claims
	if err := json.Unmarshal(b, &claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// Destroy invalidates the token; destroying an unknown token is a no-op.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, keyPrefix+token).Err()
}

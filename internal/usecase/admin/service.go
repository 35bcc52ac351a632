package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mitronet/internal/domain/user"
)

var ErrInternal = errors.New("internal error")

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type AdminUsecase interface {
	Dashboard(ctx context.Context) ([]UserSummary, error)
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Dashboard lists every registered user for the admin directory.
func (s *Service) Dashboard(ctx context.Context) ([]UserSummary, error) {
	all, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSummary, 0, len(all))
	for _, u := range all {
		out = append(out, UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role})
	}
	return out, nil
}

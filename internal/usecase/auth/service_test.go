package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"mitronet/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return user.ErrDuplicateEmail
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []user.User{}
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []user.User{}
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func TestSignupThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), "")

	created, err := svc.Signup(ctx, SignupInput{
		FullName: "Alice Smith",
		Email:    "a@x.com",
		Password: "abc123",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.PasswordHash != "" {
		t.Fatalf("signup must not return the password hash")
	}
	if created.Role != user.RoleUser {
		t.Fatalf("expected role %q, got %q", user.RoleUser, created.Role)
	}

	u, err := svc.Login(ctx, LoginInput{Email: "A@X.com", Password: "abc123"})
	if err != nil {
		t.Fatalf("login after signup: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("login resolved a different user")
	}
	if u.PasswordHash != "" {
		t.Fatalf("login must not return the password hash")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), "")

	if _, err := svc.Signup(ctx, SignupInput{
		FullName: "Alice Smith",
		Email:    "a@x.com",
		Password: "abc123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, wrongPw := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong1"})
	_, unknown := svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "abc123"})

	if !errors.Is(wrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPw)
	}
	if !errors.Is(unknown, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), "")

	in := SignupInput{FullName: "Alice Smith", Email: "a@x.com", Password: "abc123"}
	if _, err := svc.Signup(ctx, in); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	in.FullName = "Other Alice"
	if _, err := svc.Signup(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), "")

	cases := []struct {
		name string
		in   SignupInput
		want string
	}{
		{
			name: "short name",
			in:   SignupInput{FullName: "Al", Email: "a@x.com", Password: "abc123"},
			want: "Name must be at least 5 characters long",
		},
		{
			name: "name with digits",
			in:   SignupInput{FullName: "Alice 99", Email: "a@x.com", Password: "abc123"},
			want: "Name must contain only letters and spaces",
		},
		{
			name: "bad email",
			in:   SignupInput{FullName: "Alice Smith", Email: "not-an-email", Password: "abc123"},
			want: "Please provide a valid email address",
		},
		{
			name: "short password",
			in:   SignupInput{FullName: "Alice Smith", Email: "a@x.com", Password: "a1"},
			want: "Password must be at least 6 characters long",
		},
		{
			name: "password without number",
			in:   SignupInput{FullName: "Alice Smith", Email: "a@x.com", Password: "abcdef"},
			want: "Password must contain at least one number",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !strings.Contains(verr.Error(), tc.want) {
				t.Fatalf("expected message %q in %q", tc.want, verr.Error())
			}
		})
	}
}

func TestSignupAdminRole(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepo(), "Admin@Example.com")

	u, err := svc.Signup(ctx, SignupInput{
		FullName: "Site Admin",
		Email:    "admin@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.Role != user.RoleAdmin {
		t.Fatalf("expected admin role, got %q", u.Role)
	}
}

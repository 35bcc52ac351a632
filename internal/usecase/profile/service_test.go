package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"mitronet/internal/domain/user"
)

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	out := []user.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]user.Profile, error) {
	out := []user.Profile{}
	for _, id := range userIDs {
		if p, ok := r.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, p user.Profile) (user.Profile, error) {
	if cur, ok := r.profiles[p.UserID]; ok {
		if p.ProfileImage == "" {
			p.ProfileImage = cur.ProfileImage
		}
		p.Friends = cur.Friends
	} else {
		p.Friends = []uuid.UUID{}
	}
	r.profiles[p.UserID] = p
	return p, nil
}

func (r *fakeProfileRepo) AddFriend(ctx context.Context, ownerID, friendID uuid.UUID) error {
	return nil
}

func (r *fakeProfileRepo) RemoveFriend(ctx context.Context, ownerID, friendID uuid.UUID) error {
	return nil
}

func TestGetSynthesizesMissingProfile(t *testing.T) {
	alice := user.User{ID: uuid.New(), FullName: "Alice Smith", Email: "a@x.com", PasswordHash: "hash"}
	users := &fakeUserRepo{users: map[uuid.UUID]user.User{alice.ID: alice}}
	svc := NewService(users, &fakeProfileRepo{profiles: map[uuid.UUID]user.Profile{}})

	view, err := svc.Get(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.User.PasswordHash != "" {
		t.Fatalf("password hash must never leave the usecase")
	}
	if view.Profile.UserID != alice.ID || view.Profile.Headline != "" {
		t.Fatalf("expected zero-valued profile, got %+v", view.Profile)
	}
	if view.Profile.Friends == nil {
		t.Fatalf("zero-valued profile must have an empty friend set")
	}
}

func TestUpdateUpsertsAndKeepsImage(t *testing.T) {
	ctx := context.Background()
	alice := user.User{ID: uuid.New(), FullName: "Alice Smith", Email: "a@x.com"}
	users := &fakeUserRepo{users: map[uuid.UUID]user.User{alice.ID: alice}}
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]user.Profile{}}
	svc := NewService(users, profiles)

	p, err := svc.Update(ctx, alice.ID, UpdateInput{Headline: "Engineer", ProfileImage: "me.png"})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	if p.Headline != "Engineer" || p.ProfileImage != "me.png" {
		t.Fatalf("upsert result wrong: %+v", p)
	}

	// No new image on the second edit keeps the stored one.
	p, err = svc.Update(ctx, alice.ID, UpdateInput{Headline: "Senior Engineer"})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if p.Headline != "Senior Engineer" || p.ProfileImage != "me.png" {
		t.Fatalf("image not preserved: %+v", p)
	}
}

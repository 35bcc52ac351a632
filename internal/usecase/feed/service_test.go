package feed

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"mitronet/internal/domain/post"
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
	r.profiles[p.UserID] = p
	return p, nil
}

func (r *fakeProfileRepo) AddFriend(ctx context.Context, ownerID, friendID uuid.UUID) error {
	return nil
}

func (r *fakeProfileRepo) RemoveFriend(ctx context.Context, ownerID, friendID uuid.UUID) error {
	return nil
}

type fakePostRepo struct {
	posts []post.Post
}

func (r *fakePostRepo) Create(ctx context.Context, p post.Post) error {
	r.posts = append(r.posts, p)
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return post.Post{}, post.ErrNotFound
}

func (r *fakePostRepo) ListAllDesc(ctx context.Context) ([]post.Post, error) {
	out := append([]post.Post{}, r.posts...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakePostRepo) UpdateLikes(ctx context.Context, id uuid.UUID, likes []uuid.UUID) error {
	return nil
}

func (r *fakePostRepo) UpdateComments(ctx context.Context, id uuid.UUID, comments []post.Comment) error {
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestFeedAssembly(t *testing.T) {
	ctx := context.Background()

	alice := user.User{ID: uuid.New(), FullName: "Alice Smith", Email: "a@x.com"}
	bob := user.User{ID: uuid.New(), FullName: "Bob Jones", Email: "b@x.com"}

	users := &fakeUserRepo{users: map[uuid.UUID]user.User{alice.ID: alice, bob.ID: bob}}
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]user.Profile{
		bob.ID: {UserID: bob.ID, Headline: "Builder", ProfileImage: "bob.png", Friends: []uuid.UUID{}},
	}}

	base := time.Now().UTC()
	posts := &fakePostRepo{posts: []post.Post{
		{ID: uuid.New(), AuthorID: alice.ID, Content: "older", Likes: []uuid.UUID{}, Comments: []post.Comment{}, CreatedAt: base.Add(-time.Hour)},
		{ID: uuid.New(), AuthorID: bob.ID, Content: "newer", Likes: []uuid.UUID{bob.ID}, Comments: []post.Comment{}, CreatedAt: base},
	}}

	svc := NewService(users, profiles, posts)

	view, err := svc.Feed(ctx, alice.ID)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}

	if len(view.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(view.Posts))
	}
	if view.Posts[0].Content != "newer" || view.Posts[1].Content != "older" {
		t.Fatalf("posts not newest first: %q then %q", view.Posts[0].Content, view.Posts[1].Content)
	}
	if view.Posts[0].FullName != "Bob Jones" || view.Posts[0].ProfileImg != "bob.png" {
		t.Fatalf("author annotation wrong: %+v", view.Posts[0])
	}
	if view.Posts[1].ProfileImg != "" {
		t.Fatalf("author without profile should have empty avatar")
	}
	if len(view.Posts[0].Likes) != 1 {
		t.Fatalf("likes must be exposed as-is")
	}

	// Alice has no profile record yet: a zero-valued one is synthesized.
	if view.User.ID != alice.ID || view.User.Profile.UserID != alice.ID {
		t.Fatalf("viewer summary wrong: %+v", view.User)
	}
	if view.User.Profile.Headline != "" || view.User.ProfileImg != "" {
		t.Fatalf("expected zero-valued viewer profile, got %+v", view.User.Profile)
	}

	if len(view.Contacts) != 1 || view.Contacts[0].ID != bob.ID {
		t.Fatalf("contacts must be all other users: %+v", view.Contacts)
	}
	if view.Contacts[0].ProfileImg != "bob.png" {
		t.Fatalf("contact avatar missing: %+v", view.Contacts[0])
	}
}

func TestPostsViewHasNoContacts(t *testing.T) {
	ctx := context.Background()

	alice := user.User{ID: uuid.New(), FullName: "Alice Smith", Email: "a@x.com"}
	users := &fakeUserRepo{users: map[uuid.UUID]user.User{alice.ID: alice}}
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]user.Profile{}}
	posts := &fakePostRepo{}

	svc := NewService(users, profiles, posts)

	view, err := svc.Posts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(view.Posts) != 0 {
		t.Fatalf("expected empty feed, got %d posts", len(view.Posts))
	}
	if view.Contacts != nil {
		t.Fatalf("posts view must not carry contacts")
	}
}

package post

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID   `json:"id"`
	AuthorID  uuid.UUID   `json:"userId"`
	Content   string      `json:"content"`
	Likes     []uuid.UUID `json:"likes"`
	Comments  []Comment   `json:"comments"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Comment is embedded in its post; it has no lifecycle of its own.
// UserName is a snapshot of the commenter's display name at comment time
// and is never re-resolved.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

// LikedBy reports whether userID is in the like set.
func (p Post) LikedBy(userID uuid.UUID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

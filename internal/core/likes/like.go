package likes

import (
	"time"

	"github.com/google/uuid"
)

// Like represents a single user's like on a post.
// Identity is the (post_id, user_id) pair: the likes table's composite
// primary key guarantees a user likes a given post at most once.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
}

// State is the like widget's view of a post: total count plus whether
// the current viewer has liked it. Computed fresh on every render.
type State struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}

package comments

import (
	"time"

	"github.com/google/uuid"

	"Inkwell/internal/core/identity"
)

// Comment represents a comment on a post. Author carries the commenter's
// profile resolved by join, so a freshly created comment can be shown
// immediately without a second round trip.
type Comment struct {
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	Content   string            `json:"content" db:"content"`
	Author    *identity.Profile `json:"author,omitempty"`
	ID        uuid.UUID         `json:"id" db:"id"`
	PostID    uuid.UUID         `json:"postId" db:"post_id"`
	UserID    uuid.UUID         `json:"userId" db:"user_id"`
}

// CreateCommentRequest represents input for creating a comment
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest represents input for updating a comment's content
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

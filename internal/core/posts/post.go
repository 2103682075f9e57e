package posts

import (
	"time"

	"github.com/google/uuid"

	"Inkwell/internal/core/identity"
)

// HomeListingLimit caps the number of posts on the home listing
const HomeListingLimit = 12

// Post represents a blog post
type Post struct {
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	Title     string            `json:"title" db:"title"`
	Content   string            `json:"content" db:"content"`
	Author    *identity.Profile `json:"author,omitempty"`
	ID        uuid.UUID         `json:"id" db:"id"`
	AuthorID  uuid.UUID         `json:"authorId" db:"author_id"`
	Published bool              `json:"published" db:"published"`
}

// DashboardPost is a post annotated with aggregate counts for the
// author's dashboard listing
type DashboardPost struct {
	Post
	LikeCount    int `json:"likeCount" db:"like_count"`
	CommentCount int `json:"commentCount" db:"comment_count"`
}

// CreatePostRequest represents input for creating a new post.
// The author is always taken from the authenticated identity,
// never from the request body.
type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// UpdatePostRequest represents input for updating an existing post.
// Updates are last-write-wins: there is no concurrency check, and
// concurrent edits from two sessions silently clobber each other.
type UpdatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

package posts

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for posts
type Service interface {
	// ListPublished returns published posts with author profiles,
	// newest first, capped at HomeListingLimit
	ListPublished(ctx context.Context) ([]*Post, error)

	// ListByAuthor returns all of the author's posts regardless of published
	// state, newest first, annotated with like and comment counts
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*DashboardPost, error)

	// GetPost retrieves a post with its author profile. viewerID is the
	// current identity, or uuid.Nil for anonymous visitors. Unpublished
	// posts are visible only to their author; everyone else gets
	// ErrPostNotFound.
	GetPost(ctx context.Context, id uuid.UUID, viewerID uuid.UUID) (*Post, error)

	// CreatePost creates a post authored by authorID.
	// Published defaults to false unless the request toggles it.
	CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*Post, error)

	// UpdatePost overwrites title, content, and published. Author only.
	UpdatePost(ctx context.Context, id uuid.UUID, actorID uuid.UUID, req UpdatePostRequest) (*Post, error)

	// DeletePost removes a post. Author only.
	DeletePost(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a post row
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post with its author profile joined.
	// Returns ErrPostNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// ListPublished retrieves published posts with author profiles,
	// ordered by created_at descending, capped at limit
	ListPublished(ctx context.Context, limit int) ([]*Post, error)

	// ListByAuthor retrieves all posts by an author with like/comment counts,
	// ordered by created_at descending
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*DashboardPost, error)

	// Update overwrites title, content, and published for a post.
	// Returns ErrPostNotFound if no row matches.
	Update(ctx context.Context, post *Post) error

	// Delete removes a post row. Returns ErrPostNotFound if no row matches.
	Delete(ctx context.Context, id uuid.UUID) error
}

package comments

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for comments
type Service interface {
	// ListForPost returns a post's comments with author profiles,
	// most recent first
	ListForPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)

	// CreateComment creates a comment by userID on a post and returns the
	// stored row with its author profile resolved, so the caller can show
	// it without refetching.
	CreateComment(ctx context.Context, postID, userID uuid.UUID, req CreateCommentRequest) (*Comment, error)

	// UpdateComment overwrites a comment's content. Author only.
	UpdateComment(ctx context.Context, id, actorID uuid.UUID, req UpdateCommentRequest) (*Comment, error)

	// DeleteComment removes a comment. Author only.
	DeleteComment(ctx context.Context, id, actorID uuid.UUID) error
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a comment row and populates Author from the profiles
	// table in the same operation. Returns ErrPostNotFound on a missing
	// post reference.
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment with its author profile joined.
	// Returns ErrCommentNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// ListByPost retrieves a post's comments with author profiles,
	// ordered by created_at descending
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error)

	// Update overwrites a comment's content.
	// Returns ErrCommentNotFound if no row matches.
	Update(ctx context.Context, id uuid.UUID, content string) error

	// Delete removes a comment row. Returns ErrCommentNotFound if no row matches.
	Delete(ctx context.Context, id uuid.UUID) error
}

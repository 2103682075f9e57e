package likes

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for likes
type Service interface {
	// LikePost inserts a like for the (post, user) pair.
	// Returns ErrAlreadyLiked if the pair already exists and
	// ErrPostNotFound if the post doesn't.
	LikePost(ctx context.Context, postID, userID uuid.UUID) error

	// UnlikePost removes the like for the (post, user) pair.
	// Returns ErrNotLiked if there is nothing to remove.
	UnlikePost(ctx context.Context, postID, userID uuid.UUID) error

	// GetState returns the like count for a post and whether viewerID has
	// liked it. viewerID may be uuid.Nil for anonymous visitors, in which
	// case Liked is always false.
	GetState(ctx context.Context, postID, viewerID uuid.UUID) (*State, error)
}

// Repository defines the data access interface for likes
type Repository interface {
	// Create inserts a like row. Returns ErrAlreadyLiked on a composite-key
	// conflict and ErrPostNotFound on a missing post reference.
	Create(ctx context.Context, like *Like) error

	// Delete removes the like row for the pair. Returns ErrNotLiked if no
	// row was removed.
	Delete(ctx context.Context, postID, userID uuid.UUID) error

	// Count returns the number of likes on a post
	Count(ctx context.Context, postID uuid.UUID) (int, error)

	// Exists reports whether the (post, user) pair has a like row
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

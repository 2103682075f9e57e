package likes

import "errors"

var (
	// ErrAlreadyLiked indicates the (post, user) pair already has a like row.
	// Raised by the composite-key constraint when two toggles race; the
	// second insert must fail rather than silently succeed twice.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked indicates there is no like row to remove for the pair
	ErrNotLiked = errors.New("post not liked")

	// ErrPostNotFound indicates the post being liked doesn't exist
	ErrPostNotFound = errors.New("post not found")
)

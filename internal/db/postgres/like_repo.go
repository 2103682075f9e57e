package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like row. The composite primary key rejects a second
// like from the same user, which is what makes two racing toggles safe.
func (r *postgresLikeRepo) Create(ctx context.Context, like *likes.Like) error {
	query := `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, like.PostID, like.UserID).Scan(&like.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "likes_pkey") {
			return likes.ErrAlreadyLiked
		}
		if strings.Contains(err.Error(), "likes_post_id_fkey") {
			return likes.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

// Delete removes the like row for the (post, user) pair
func (r *postgresLikeRepo) Delete(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		DELETE FROM likes
		WHERE post_id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return likes.ErrNotLiked
	}

	return nil
}

// Count returns the number of likes on a post
func (r *postgresLikeRepo) Count(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// Exists reports whether the (post, user) pair has a like row
func (r *postgresLikeRepo) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check like membership: %w", err)
	}
	return exists, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/identity"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a comment row and resolves the author profile in the same
// statement, so the caller gets a fully displayable comment back
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		WITH inserted AS (
			INSERT INTO comments (id, post_id, user_id, content)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, user_id
		)
		SELECT i.created_at, pr.id, pr.username, pr.full_name, pr.created_at
		FROM inserted i
		JOIN profiles pr ON pr.id = i.user_id
	`

	var author identity.Profile

	err := r.db.QueryRowContext(
		ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Content,
	).Scan(
		&comment.CreatedAt,
		&author.ID, &author.Username, &author.FullName, &author.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "comments_post_id_fkey") {
			return comments.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	comment.Author = &author
	return nil
}

// GetByID retrieves a comment with its author profile joined
func (r *postgresCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*comments.Comment, error) {
	query := `
		SELECT
			c.id, c.post_id, c.user_id, c.content, c.created_at,
			pr.id, pr.username, pr.full_name, pr.created_at
		FROM comments c
		JOIN profiles pr ON pr.id = c.user_id
		WHERE c.id = $1
	`

	var comment comments.Comment
	var author identity.Profile

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt,
		&author.ID, &author.Username, &author.FullName, &author.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	comment.Author = &author
	return &comment, nil
}

// ListByPost retrieves a post's comments with author profiles, newest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comments.Comment, error) {
	query := `
		SELECT
			c.id, c.post_id, c.user_id, c.content, c.created_at,
			pr.id, pr.username, pr.full_name, pr.created_at
		FROM comments c
		JOIN profiles pr ON pr.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		var author identity.Profile
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt,
			&author.ID, &author.Username, &author.FullName, &author.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comment.Author = &author
		result = append(result, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

// Update overwrites a comment's content
func (r *postgresCommentRepo) Update(ctx context.Context, id uuid.UUID, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = $2 WHERE id = $1`, id, content,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment row
func (r *postgresCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

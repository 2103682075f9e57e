package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"Inkwell/internal/core/identity"
	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a post row
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, content, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.AuthorID, post.Title, post.Content, post.Published,
	).Scan(&post.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post with its author profile joined
func (r *postgresPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*posts.Post, error) {
	query := `
		SELECT
			p.id, p.author_id, p.title, p.content, p.published, p.created_at,
			pr.id, pr.username, pr.full_name, pr.created_at
		FROM posts p
		JOIN profiles pr ON pr.id = p.author_id
		WHERE p.id = $1
	`

	var post posts.Post
	var author identity.Profile

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Published, &post.CreatedAt,
		&author.ID, &author.Username, &author.FullName, &author.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	post.Author = &author
	return &post, nil
}

// ListPublished retrieves published posts with author profiles, newest first
func (r *postgresPostRepo) ListPublished(ctx context.Context, limit int) ([]*posts.Post, error) {
	query := `
		SELECT
			p.id, p.author_id, p.title, p.content, p.published, p.created_at,
			pr.id, pr.username, pr.full_name, pr.created_at
		FROM posts p
		JOIN profiles pr ON pr.id = p.author_id
		WHERE p.published = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*posts.Post
	for rows.Next() {
		var post posts.Post
		var author identity.Profile
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Published, &post.CreatedAt,
			&author.ID, &author.Username, &author.FullName, &author.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		post.Author = &author
		result = append(result, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// ListByAuthor retrieves all of an author's posts with like/comment counts, newest first
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*posts.DashboardPost, error) {
	query := `
		SELECT
			p.id, p.author_id, p.title, p.content, p.published, p.created_at,
			COUNT(DISTINCT l.user_id) AS like_count,
			COUNT(DISTINCT c.id) AS comment_count
		FROM posts p
		LEFT JOIN likes l ON l.post_id = p.id
		LEFT JOIN comments c ON c.post_id = p.id
		WHERE p.author_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*posts.DashboardPost
	for rows.Next() {
		var post posts.DashboardPost
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Published, &post.CreatedAt,
			&post.LikeCount, &post.CommentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dashboard post: %w", err)
		}
		result = append(result, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dashboard posts: %w", err)
	}

	return result, nil
}

// Update overwrites title, content, and published for a post
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, published = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.Published)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// Delete removes a post row. Likes and comments cascade in the schema.
func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

package posts

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	maxTitleLength   = 200
	maxContentLength = 100_000
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

func (s *postService) ListPublished(ctx context.Context) ([]*Post, error) {
	return s.repo.ListPublished(ctx, HomeListingLimit)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*DashboardPost, error) {
	if authorID == uuid.Nil {
		return nil, fmt.Errorf("author id is required")
	}
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *postService) GetPost(ctx context.Context, id, viewerID uuid.UUID) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Drafts are visible only to their author. Not-found rather than
	// forbidden, so the response doesn't reveal that a draft exists.
	if !post.Published && post.AuthorID != viewerID {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*Post, error) {
	if authorID == uuid.Nil {
		return nil, fmt.Errorf("author id is required")
	}
	if err := validatePostInput(req.Title, req.Content); err != nil {
		return nil, err
	}

	post := &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Published: req.Published,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, id, actorID uuid.UUID, req UpdatePostRequest) (*Post, error) {
	if err := validatePostInput(req.Title, req.Content); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actorID {
		return nil, ErrNotAuthor
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.Published = req.Published

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id, actorID uuid.UUID) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrNotAuthor
	}

	return s.repo.Delete(ctx, id)
}

func validatePostInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if len(title) > maxTitleLength {
		return NewValidationError("title", fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	if len(content) > maxContentLength {
		return NewValidationError("content", fmt.Sprintf("content must be at most %d characters", maxContentLength))
	}
	return nil
}

package comments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const maxCommentLength = 10_000

type commentService struct {
	repo Repository
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository) Service {
	return &commentService{repo: repo}
}

func (s *commentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) CreateComment(ctx context.Context, postID, userID uuid.UUID, req CreateCommentRequest) (*Comment, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:      uuid.New(),
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id, actorID uuid.UUID, req UpdateCommentRequest) (*Comment, error) {
	content := strings.TrimSpace(req.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, ErrNotAuthor
	}

	if err := s.repo.Update(ctx, id, content); err != nil {
		return nil, err
	}

	comment.Content = content
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id, actorID uuid.UUID) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return ErrNotAuthor
	}

	return s.repo.Delete(ctx, id)
}

func validateContent(content string) error {
	if content == "" {
		return NewValidationError("content", "content is required")
	}
	if len(content) > maxCommentLength {
		return NewValidationError("content", fmt.Sprintf("content must be at most %d characters", maxCommentLength))
	}
	return nil
}

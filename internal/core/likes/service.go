package likes

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type likeService struct {
	repo Repository
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository) Service {
	return &likeService{repo: repo}
}

func (s *likeService) LikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}

	like := &Like{PostID: postID, UserID: userID}
	return s.repo.Create(ctx, like)
}

func (s *likeService) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}

	return s.repo.Delete(ctx, postID, userID)
}

func (s *likeService) GetState(ctx context.Context, postID, viewerID uuid.UUID) (*State, error) {
	count, err := s.repo.Count(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	state := &State{Count: count}

	if viewerID != uuid.Nil {
		liked, err := s.repo.Exists(ctx, postID, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check like membership: %w", err)
		}
		state.Liked = liked
	}

	return state, nil
}

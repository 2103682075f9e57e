package comments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepository) Update(ctx context.Context, id uuid.UUID, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateComment_TrimsContent(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	postID := uuid.New()
	userID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == postID && c.UserID == userID && c.Content == "nice post"
	})).Return(nil)

	comment, err := service.CreateComment(context.Background(), postID, userID, CreateCommentRequest{
		Content: "  nice post  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
	repo.AssertExpectations(t)
}

func TestCreateComment_BlankRejected(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	_, err := service.CreateComment(context.Background(), uuid.New(), uuid.New(), CreateCommentRequest{
		Content: "   ",
	})
	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateComment_RequiresUser(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	_, err := service.CreateComment(context.Background(), uuid.New(), uuid.Nil, CreateCommentRequest{
		Content: "hello",
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateComment_PostGone(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(ErrPostNotFound)

	_, err := service.CreateComment(context.Background(), uuid.New(), uuid.New(), CreateCommentRequest{
		Content: "hello",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdateComment_NotAuthor(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	commentID := uuid.New()
	existing := &Comment{ID: commentID, UserID: uuid.New(), Content: "original"}

	repo.On("GetByID", mock.Anything, commentID).Return(existing, nil)

	_, err := service.UpdateComment(context.Background(), commentID, uuid.New(), UpdateCommentRequest{
		Content: "edited",
	})
	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateComment_Success(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	commentID := uuid.New()
	userID := uuid.New()
	existing := &Comment{ID: commentID, UserID: userID, Content: "original"}

	repo.On("GetByID", mock.Anything, commentID).Return(existing, nil)
	repo.On("Update", mock.Anything, commentID, "edited").Return(nil)

	comment, err := service.UpdateComment(context.Background(), commentID, userID, UpdateCommentRequest{
		Content: " edited ",
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
	repo.AssertExpectations(t)
}

func TestDeleteComment_NotAuthor(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	commentID := uuid.New()
	existing := &Comment{ID: commentID, UserID: uuid.New()}

	repo.On("GetByID", mock.Anything, commentID).Return(existing, nil)

	err := service.DeleteComment(context.Background(), commentID, uuid.New())
	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteComment_Success(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo)

	commentID := uuid.New()
	userID := uuid.New()
	existing := &Comment{ID: commentID, UserID: userID}

	repo.On("GetByID", mock.Anything, commentID).Return(existing, nil)
	repo.On("Delete", mock.Anything, commentID).Return(nil)

	err := service.DeleteComment(context.Background(), commentID, userID)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

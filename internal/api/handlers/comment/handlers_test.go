package comment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/identity"
)

// mockCommentService implements comments.Service with overridable functions
type mockCommentService struct {
	listForPostFunc   func(ctx context.Context, postID uuid.UUID) ([]*comments.Comment, error)
	createCommentFunc func(ctx context.Context, postID, userID uuid.UUID, req comments.CreateCommentRequest) (*comments.Comment, error)
	updateCommentFunc func(ctx context.Context, id, actorID uuid.UUID, req comments.UpdateCommentRequest) (*comments.Comment, error)
	deleteCommentFunc func(ctx context.Context, id, actorID uuid.UUID) error
}

func (m *mockCommentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]*comments.Comment, error) {
	return m.listForPostFunc(ctx, postID)
}

func (m *mockCommentService) CreateComment(ctx context.Context, postID, userID uuid.UUID, req comments.CreateCommentRequest) (*comments.Comment, error) {
	return m.createCommentFunc(ctx, postID, userID, req)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, id, actorID uuid.UUID, req comments.UpdateCommentRequest) (*comments.Comment, error) {
	return m.updateCommentFunc(ctx, id, actorID, req)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id, actorID uuid.UUID) error {
	return m.deleteCommentFunc(ctx, id, actorID)
}

func commentRequest(method, target, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != uuid.Nil {
		ctx := middleware.WithIdentity(req.Context(), &identity.Identity{UserID: userID, Username: "alice"})
		req = req.WithContext(ctx)
	}
	return req
}

func TestHandleCreate_ReturnsCommentWithAuthor(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	service := &mockCommentService{
		createCommentFunc: func(ctx context.Context, pID, uID uuid.UUID, req comments.CreateCommentRequest) (*comments.Comment, error) {
			assert.Equal(t, postID, pID)
			assert.Equal(t, userID, uID)
			return &comments.Comment{
				ID:      uuid.New(),
				PostID:  pID,
				UserID:  uID,
				Content: req.Content,
				Author:  &identity.Profile{ID: uID, Username: "alice", FullName: "Alice Doe"},
			}, nil
		},
	}
	handler := NewCreateCommentHandler(service)

	r := chi.NewRouter()
	r.Post("/api/posts/{postID}/comments", handler.HandleCreate)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("POST", "/api/posts/"+postID.String()+"/comments", `{"content":"nice post"}`, userID))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "nice post")
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestHandleCreate_UnauthenticatedIssuesNoWrite(t *testing.T) {
	called := false
	service := &mockCommentService{
		createCommentFunc: func(ctx context.Context, pID, uID uuid.UUID, req comments.CreateCommentRequest) (*comments.Comment, error) {
			called = true
			return nil, nil
		},
	}
	handler := NewCreateCommentHandler(service)

	r := chi.NewRouter()
	r.Post("/api/posts/{postID}/comments", handler.HandleCreate)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("POST", "/api/posts/"+uuid.NewString()+"/comments", `{"content":"hi"}`, uuid.Nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestHandleCreate_PostGone(t *testing.T) {
	service := &mockCommentService{
		createCommentFunc: func(ctx context.Context, pID, uID uuid.UUID, req comments.CreateCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrPostNotFound
		},
	}
	handler := NewCreateCommentHandler(service)

	r := chi.NewRouter()
	r.Post("/api/posts/{postID}/comments", handler.HandleCreate)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("POST", "/api/posts/"+uuid.NewString()+"/comments", `{"content":"hi"}`, uuid.New()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetComments_OpenToAnonymous(t *testing.T) {
	postID := uuid.New()

	service := &mockCommentService{
		listForPostFunc: func(ctx context.Context, pID uuid.UUID) ([]*comments.Comment, error) {
			assert.Equal(t, postID, pID)
			return []*comments.Comment{
				{ID: uuid.New(), PostID: pID, Content: "second"},
				{ID: uuid.New(), PostID: pID, Content: "first"},
			}, nil
		},
	}
	handler := NewGetCommentsHandler(service)

	r := chi.NewRouter()
	r.Get("/api/posts/{postID}/comments", handler.HandleGetComments)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("GET", "/api/posts/"+postID.String()+"/comments", "", uuid.Nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "second")
}

func TestHandleGetComments_NoEmailInResponse(t *testing.T) {
	postID := uuid.New()

	service := &mockCommentService{
		listForPostFunc: func(ctx context.Context, pID uuid.UUID) ([]*comments.Comment, error) {
			return []*comments.Comment{
				{
					ID:      uuid.New(),
					PostID:  pID,
					Content: "hello",
					Author:  &identity.Profile{ID: uuid.New(), Username: "bob", FullName: "Bob B"},
				},
			}, nil
		},
	}
	handler := NewGetCommentsHandler(service)

	r := chi.NewRouter()
	r.Get("/api/posts/{postID}/comments", handler.HandleGetComments)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("GET", "/api/posts/"+postID.String()+"/comments", "", uuid.Nil))

	// The anonymous listing carries author display fields only. An email
	// key anywhere in the body means a credential field got back onto the
	// profile with a live JSON tag.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "email")
}

func TestHandleGetComments_EmptyListNotNull(t *testing.T) {
	service := &mockCommentService{
		listForPostFunc: func(ctx context.Context, pID uuid.UUID) ([]*comments.Comment, error) {
			return nil, nil
		},
	}
	handler := NewGetCommentsHandler(service)

	r := chi.NewRouter()
	r.Get("/api/posts/{postID}/comments", handler.HandleGetComments)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("GET", "/api/posts/"+uuid.NewString()+"/comments", "", uuid.Nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"comments":[]}`, rec.Body.String())
}

func TestHandleUpdate_NotAuthor(t *testing.T) {
	service := &mockCommentService{
		updateCommentFunc: func(ctx context.Context, id, actorID uuid.UUID, req comments.UpdateCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrNotAuthor
		},
	}
	handler := NewUpdateCommentHandler(service)

	r := chi.NewRouter()
	r.Put("/api/comments/{commentID}", handler.HandleUpdate)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("PUT", "/api/comments/"+uuid.NewString(), `{"content":"edited"}`, uuid.New()))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleDelete_Success(t *testing.T) {
	commentID := uuid.New()
	userID := uuid.New()

	var gotID, gotActor uuid.UUID
	service := &mockCommentService{
		deleteCommentFunc: func(ctx context.Context, id, actorID uuid.UUID) error {
			gotID, gotActor = id, actorID
			return nil
		},
	}
	handler := NewDeleteCommentHandler(service)

	r := chi.NewRouter()
	r.Delete("/api/comments/{commentID}", handler.HandleDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, commentRequest("DELETE", "/api/comments/"+commentID.String(), "", userID))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, commentID, gotID)
	assert.Equal(t, userID, gotActor)
}

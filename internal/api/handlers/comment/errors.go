package comment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/core/comments"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Comment not found")

	case errors.Is(err, comments.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	case errors.Is(err, comments.ErrNotAuthor):
		writeError(w, http.StatusForbidden, "NotAuthorized",
			"Only the author may modify this comment")

	case comments.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in comment handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}

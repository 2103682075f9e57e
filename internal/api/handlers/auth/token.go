package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/core/identity"
)

// TokenHandler exchanges email/password credentials for a bearer access
// token, for API callers that don't hold a session cookie
type TokenHandler struct {
	identityService identity.Service
	issuer          *identity.TokenIssuer
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(identityService identity.Service, issuer *identity.TokenIssuer) *TokenHandler {
	return &TokenHandler{identityService: identityService, issuer: issuer}
}

type tokenOutput struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// HandleToken handles POST /api/auth/token
func (h *TokenHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req identity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	ident, err := h.identityService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, "InvalidCredentials", err.Error())
			return
		}
		log.Printf("Unexpected error issuing token: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	token, err := h.issuer.Mint(*ident)
	if err != nil {
		log.Printf("Failed to mint access token: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenOutput{
		AccessToken: token,
		TokenType:   "Bearer",
	}); err != nil {
		log.Printf("Failed to encode token response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

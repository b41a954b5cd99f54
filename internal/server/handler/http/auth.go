package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lookate/backend/internal/models"
)

// AuthService defines the interface for account operations required by the
// HTTP handlers.
type AuthService interface {
	// Register creates an account and returns it with an access token.
	Register(ctx context.Context, email, password, name string) (models.User, string, error)
	// Login verifies credentials and returns the user with an access token.
	Login(ctx context.Context, email, password string) (models.User, string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	// AuthService performs the underlying account operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the shared shape of successful register/login replies.
type authResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Register handles POST /auth/register. It expects a JSON body with email,
// password and name; a duplicate email yields 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Message:     "User registered successfully",
		AccessToken: token,
		User:        user,
	})
}

// Login handles POST /auth/login. Bad credentials yield 401 without
// revealing whether the email exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        user,
	})
}

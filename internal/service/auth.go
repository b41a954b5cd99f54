// Package service provides business-logic services for accounts, tasks,
// profile aggregation and the AI passthrough flows, delegating persistence
// to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lookate/backend/internal/models"
)

// tokenTTL is the fixed validity window of issued access tokens.
const tokenTTL = 30 * 24 * time.Hour

// UserRepository defines the persistence operations required by the
// authentication and profile services.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the generated ID.
	// Returns models.ErrConflict for a duplicate email.
	CreateUser(ctx context.Context, email, name, passwordHash string) (models.User, error)
	// UserByEmail fetches a user by email; models.ErrNotFound if absent.
	UserByEmail(ctx context.Context, email string) (models.User, error)
	// UserByID fetches a user by ID; models.ErrNotFound if absent.
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// AuthService implements registration and login, issuing bearer tokens
// consumed by the rest of the API as the opaque user identity.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// secret signs issued tokens.
	secret []byte
}

// NewAuthService constructs a new AuthService using the provided repository
// and token signing secret.
func NewAuthService(repo UserRepository, secret []byte) *AuthService {
	return &AuthService{repo: repo, secret: secret}
}

// Register creates an account and returns it with a fresh access token.
// Missing fields yield models.ErrValidation; a duplicate email yields
// models.ErrConflict.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (models.User, string, error) {
	if email == "" || password == "" || name == "" {
		return models.User{}, "", fmt.Errorf("email, password and name are required: %w", models.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, email, name, string(hash))
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh access
// token. An unknown email and a wrong password are both reported as
// models.ErrUnauthorized so the response does not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", fmt.Errorf("email and password are required: %w", models.ErrValidation)
	}

	user, err := s.repo.UserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, "", models.ErrUnauthorized
	}
	if err != nil {
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", models.ErrUnauthorized
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// issueToken signs an HS256 token carrying the user ID, valid for tokenTTL.
func (s *AuthService) issueToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lookate/backend/internal/models"
)

type mockUserRepo struct {
	CreateUserFunc  func(ctx context.Context, email, name, passwordHash string) (models.User, error)
	UserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	UserByIDFunc    func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, email, name, passwordHash string) (models.User, error) {
	return m.CreateUserFunc(ctx, email, name, passwordHash)
}
func (m *mockUserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.UserByEmailFunc(ctx, email)
}
func (m *mockUserRepo) UserByID(ctx context.Context, id int64) (models.User, error) {
	return m.UserByIDFunc(ctx, id)
}

var testSecret = []byte("test-secret")

func TestRegister_MissingFields(t *testing.T) {
	s := NewAuthService(&mockUserRepo{}, testSecret)

	_, _, err := s.Register(context.Background(), "", "pw", "Alice")
	require.ErrorIs(t, err, models.ErrValidation)

	_, _, err = s.Register(context.Background(), "a@example.com", "", "Alice")
	require.ErrorIs(t, err, models.ErrValidation)

	_, _, err = s.Register(context.Background(), "a@example.com", "pw", "")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestRegister_HashesPassword(t *testing.T) {
	var storedHash string
	repo := &mockUserRepo{
		CreateUserFunc: func(ctx context.Context, email, name, passwordHash string) (models.User, error) {
			storedHash = passwordHash
			return models.User{ID: 1, Email: email, Name: name, PasswordHash: passwordHash}, nil
		},
	}
	s := NewAuthService(repo, testSecret)

	user, token, err := s.Register(context.Background(), "alice@example.com", "secret123", "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.NotEmpty(t, token)

	require.NotEqual(t, "secret123", storedHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		CreateUserFunc: func(ctx context.Context, email, name, passwordHash string) (models.User, error) {
			return models.User{}, models.ErrConflict
		},
	}
	s := NewAuthService(repo, testSecret)

	_, _, err := s.Register(context.Background(), "dup@example.com", "pw", "Dup")
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestLogin_Success_TokenClaims(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		UserByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 42, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	s := NewAuthService(repo, testSecret)

	user, token, err := s.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return testSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, float64(42), claims["user_id"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(tokenTTL), exp.Time, time.Minute)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		UserByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 42, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	s := NewAuthService(repo, testSecret)

	_, _, err = s.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		UserByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, models.ErrNotFound
		},
	}
	s := NewAuthService(repo, testSecret)

	// Unknown email must look exactly like a wrong password.
	_, _, err := s.Login(context.Background(), "nobody@example.com", "pw")
	require.ErrorIs(t, err, models.ErrUnauthorized)
	require.False(t, errors.Is(err, models.ErrNotFound))
}

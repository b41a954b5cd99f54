package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestJWTAuth(t *testing.T) {
	valid := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	noUserID := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedID   int64
	}{
		{name: "valid token", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedID: 42},
		{name: "missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "no bearer prefix", header: valid, expectedCode: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expired, expectedCode: http.StatusUnauthorized},
		{name: "wrong signing key", header: "Bearer " + wrongKey, expectedCode: http.StatusUnauthorized},
		{name: "missing user_id claim", header: "Bearer " + noUserID, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID, _ = UserIDFromContext(r.Context())
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			JWTAuth(testSecret)(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK {
				if !called {
					t.Fatal("expected handler to be called")
				}
				if gotID != tt.expectedID {
					t.Errorf("expected user ID %d, got %d", tt.expectedID, gotID)
				}
			} else if called {
				t.Error("handler should not be called on auth failure")
			}
		})
	}
}

func TestUserIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("expected no user ID in fresh context")
	}
}

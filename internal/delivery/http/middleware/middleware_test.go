package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthUC) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUC) UpdateProfile(ctx context.Context, userID string, upd *domain.ProfileUpdate) (*domain.AuthResult, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func newProtectedRouter(tokens *auth.TokenService, authUC domain.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/me", middleware.AuthMiddleware(tokens, authUC), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	t.Run("Should return 401 without a bearer header", func(t *testing.T) {
		r := newProtectedRouter(tokens, new(MockAuthUC))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should return 401 for a valid token whose user is gone", func(t *testing.T) {
		authUC := new(MockAuthUC)
		authUC.On("GetProfile", mock.Anything, "ghost").Return(nil, apperror.Unauthorized("User not found"))
		r := newProtectedRouter(tokens, authUC)

		token, err := tokens.Generate("ghost")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should surface a store failure as 500, not 401", func(t *testing.T) {
		authUC := new(MockAuthUC)
		authUC.On("GetProfile", mock.Anything, "alice").Return(nil, errors.New("connection refused"))
		r := newProtectedRouter(tokens, authUC)

		token, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("Should pass through with a valid token and live user", func(t *testing.T) {
		authUC := new(MockAuthUC)
		authUC.On("GetProfile", mock.Anything, "alice").Return(&domain.User{ID: "alice", Role: domain.RoleSeeker}, nil)
		r := newProtectedRouter(tokens, authUC)

		token, err := tokens.Generate("alice")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func newCORSRouter(frontendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware(frontendURL))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestCORSMiddleware(t *testing.T) {
	const frontend = "https://app.example.com"

	t.Run("Should emit no CORS headers for a request without Origin", func(t *testing.T) {
		r := newCORSRouter(frontend)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("Should echo the configured frontend origin", func(t *testing.T) {
		r := newCORSRouter(frontend)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", frontend)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, frontend, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should send no allow headers for an unknown origin", func(t *testing.T) {
		r := newCORSRouter(frontend)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should refuse a preflight from an unknown origin", func(t *testing.T) {
		r := newCORSRouter(frontend)

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should answer a preflight from the frontend with 204", func(t *testing.T) {
		r := newCORSRouter(frontend)

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", frontend)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

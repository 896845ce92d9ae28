package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/mocks"
	"github.com/omxqn/api-application/internal/services"

	"go.uber.org/zap"
)

func protectedRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(authSvc), func(c *gin.Context) {
		account, _ := AccountFrom(c)
		c.JSON(http.StatusOK, gin.H{"account_id": account.ID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMocks func(*mocks.MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bearer token accepted",
			header:     "Bearer live-token",
			setupMocks: func(svc *mocks.MockAuthService) {},
			wantStatus: http.StatusOK,
			wantBody:   `"account_id":1`,
		},
		{
			name:       "bare token accepted",
			header:     "live-token",
			setupMocks: func(svc *mocks.MockAuthService) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			setupMocks: func(svc *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc123",
			setupMocks: func(svc *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization header format",
		},
		{
			name:   "revoked token",
			header: "Bearer old-token",
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.Account, error) {
					return nil, domain.ErrTokenRevoked
				}
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token not found or does not match",
		},
		{
			name:   "expired token",
			header: "Bearer expired-token",
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.Account, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token expired",
		},
		{
			name:   "invalid token",
			header: "Bearer garbage",
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.Account, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			r := protectedRouter(authSvc)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequireRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authzSvc := services.NewAuthzService(mocks.NewMockAccountRepository(), zap.NewNop())

	adminRouter := func(account *domain.Account) *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) { c.Set(ContextAccount, account) },
			RequireRoleMiddleware(authzSvc, domain.SystemRoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	tests := []struct {
		name       string
		account    *domain.Account
		wantStatus int
	}{
		{name: "admin passes", account: &domain.Account{ID: 1, SystemRole: domain.SystemRoleAdmin}, wantStatus: http.StatusOK},
		{name: "super admin passes", account: &domain.Account{ID: 1, SystemRole: domain.SystemRoleSuperAdmin}, wantStatus: http.StatusOK},
		{name: "user denied", account: &domain.Account{ID: 1, SystemRole: domain.SystemRoleUser}, wantStatus: http.StatusForbidden},
		{name: "unknown role reads as missing", account: &domain.Account{ID: 1, SystemRole: "moderator"}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			adminRouter(tt.account).ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

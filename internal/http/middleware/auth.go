package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
)

// AuthMW wraps the auth and authorization services for middleware
type AuthMW struct {
	authSvc  domain.AuthService
	authzSvc domain.AuthorizationService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService, authzSvc domain.AuthorizationService) *AuthMW {
	return &AuthMW{
		authSvc:  authSvc,
		authzSvc: authzSvc,
	}
}

// WithToken returns the bearer token middleware function
func (mw *AuthMW) WithToken() gin.HandlerFunc {
	return AuthMiddleware(mw.authSvc)
}

// MinRole returns middleware that rejects accounts below the given role.
// It must run after WithToken.
func (mw *AuthMW) MinRole(min domain.SystemRole) gin.HandlerFunc {
	return RequireRoleMiddleware(mw.authzSvc, min)
}

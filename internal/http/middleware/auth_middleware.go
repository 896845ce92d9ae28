package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
)

// ContextAccount is the gin context key holding the authenticated
// *domain.Account.
const ContextAccount = "account"

// AuthMiddleware creates authentication middleware. The presented token
// must verify cryptographically and equal the single token stored on the
// account; a rotated or cleared token fails even with a valid signature.
func AuthMiddleware(authSvc domain.AuthService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Accept both "Bearer <token>" and a bare token.
		token := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			if parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
				c.Abort()
				return
			}
			token = parts[1]
		}

		account, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, domain.ErrTokenRevoked):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token not found or does not match"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(ContextAccount, account)
		c.Set("account_id", fmt.Sprintf("%d", account.ID)) // string for Casbin compatibility
		c.Set("user_role", string(account.SystemRole))

		c.Next()
	})
}

// AccountFrom returns the authenticated account placed by AuthMiddleware.
func AccountFrom(c *gin.Context) (*domain.Account, bool) {
	v, ok := c.Get(ContextAccount)
	if !ok {
		return nil, false
	}
	account, ok := v.(*domain.Account)
	return account, ok
}

// RequireRoleMiddleware gates a route on the account's system role. It is
// evaluated against the identity the token middleware already resolved,
// not a second lookup.
func RequireRoleMiddleware(authzSvc domain.AuthorizationService, min domain.SystemRole) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		account, ok := AccountFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
			c.Abort()
			return
		}

		if err := authzSvc.RequireRole(account, min); err != nil {
			switch {
			case errors.Is(err, domain.ErrInsufficientRole):
				c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			default:
				// An unrecognized stored role reads as a missing one.
				c.JSON(http.StatusNotFound, gin.H{"error": "Account role is not recognized"})
			}
			c.Abort()
			return
		}

		c.Next()
	})
}

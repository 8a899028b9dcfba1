package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/principal"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
	"github.com/DhavalSuthar-24/acecourt/pkg/token"
)

// TokenCookieName is the cookie the login handler sets for browser clients.
const TokenCookieName = "acecourt_token"

// UserFinder resolves the account behind a token.
type UserFinder interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// RevokedTokenKey is the cache key marking a token id as logged out.
func RevokedTokenKey(jti string) string {
	return "revoked:" + jti
}

// bearerToken reads the token from the Authorization header, falling back to
// the session cookie.
func bearerToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", errors.New("invalid Authorization header format, expected: Bearer <token>")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", errors.New("authorization header is required")
}

// AuthMiddleware authenticates the request and stores the principal in both
// the gin context and the request context. The role is read from the stored
// account, not the token, so demotions apply immediately.
func AuthMiddleware(jwtSecret string, users UserFinder, revoked cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		raw, err := bearerToken(c)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}

		claims, err := token.ValidateJWT(raw, jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		_, isRevoked, err := revoked.Get(ctx, RevokedTokenKey(claims.ID))
		if err != nil {
			slog.ErrorContext(ctx, "revocation lookup failed", logger.Err(err))
			responses.InternalServerError(c, "")
			return
		}
		if isRevoked {
			responses.Unauthorized(c, "Token has been revoked")
			return
		}

		user, err := users.GetUser(ctx, claims.UserID)
		if err != nil {
			slog.ErrorContext(ctx, "user lookup failed", logger.Err(err))
			responses.InternalServerError(c, "")
			return
		}
		if user == nil {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		p := principal.Principal{UserID: user.ID, Role: user.Role}
		c.Request = c.Request.WithContext(principal.WithPrincipal(ctx, p))
		c.Set(common.ContextUserIDKey, user.ID)
		c.Set(common.ContextUserKey, user)
		c.Set(common.ContextPrincipalKey, p)
		c.Set(common.ContextClaimsKey, claims)
		c.Next()
	}
}

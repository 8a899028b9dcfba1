package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/middleware"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
	"github.com/DhavalSuthar-24/acecourt/pkg/token"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
)

type AuthController struct {
	repo    AuthRepository
	config  *config.Config
	revoked cache.Cache
}

func NewAuthController(repo AuthRepository, cfg *config.Config, revoked cache.Cache) *AuthController {
	return &AuthController{repo: repo, config: cfg, revoked: revoked}
}

func (ac *AuthController) secureCookie() bool {
	return ac.config.App.Env == "production"
}

// @Summary      Login user
// @Description  Authenticate a coach or admin with username and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} AuthResponse "Login successful, returns token and user info"
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !common.BindJSON(c, &req) {
		return
	}

	foundUser, err := ac.repo.GetUserByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		responses.FromError(c, "Login failed", err)
		return
	}
	// Unknown users and wrong passwords look the same to the client.
	if foundUser == nil || !utils.CheckPassword(foundUser.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	issued, err := token.GenerateJWT(foundUser.ID, string(foundUser.Role), ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "token generation failed", logger.Err(err))
		responses.InternalServerError(c, "Token generation failed")
		return
	}

	maxAge := int(time.Until(issued.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, issued.Token, maxAge, "/", "", ac.secureCookie(), true)
	c.JSON(http.StatusOK, AuthResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      FilterUserRecord(foundUser),
	})
}

// @Summary      Logout user
// @Description  Revokes the presented token until it expires and clears the cookie.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]string "Logged out"
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	claims, ok := common.GetClaims(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := ac.revoked.Set(c.Request.Context(), middleware.RevokedTokenKey(claims.ID), "1", ttl); err != nil {
			slog.ErrorContext(c.Request.Context(), "token revocation failed", logger.Err(err))
			responses.InternalServerError(c, "Failed to revoke token")
			return
		}
	}

	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", ac.secureCookie(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// @Summary      Get current user
// @Description  Retrieves the account of the authenticated user.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} UserResponse "Current user"
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Router       /auth/user [get]
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	currentUser, ok := common.GetCurrentUser(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}
	c.JSON(http.StatusOK, FilterUserRecord(currentUser))
}

package common

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/principal"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
	"github.com/DhavalSuthar-24/acecourt/pkg/token"
	"github.com/DhavalSuthar-24/acecourt/pkg/validator"
)

// Keys the auth middleware sets on the gin context.
const (
	ContextUserKey      = "currentUser"
	ContextUserIDKey    = "userID"
	ContextPrincipalKey = "principal"
	ContextClaimsKey    = "tokenClaims"
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}

// GetCurrentUser retrieves the authenticated user from the Gin context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	u, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := u.(*models.User)
	return user, ok
}

func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	v, ok := c.Get(ContextPrincipalKey)
	if !ok {
		return principal.Principal{}, false
	}
	p, ok := v.(principal.Principal)
	return p, ok
}

func GetClaims(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// OptionalUintQuery reads an optional positive numeric query parameter.
func OptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil, errors.New("invalid " + name)
	}
	id := uint(v)
	return &id, nil
}

// BindJSON decodes and validates the request body, answering 400 with the
// failing fields when it does not bind.
func BindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		responses.ValidationError(c, validator.ParseError(err))
		return false
	}
	return true
}

// PathID parses a path id, answering 400 when it is malformed.
func PathID(c *gin.Context, name string) (uint, bool) {
	id, err := ParseID(c, name)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return 0, false
	}
	return id, true
}

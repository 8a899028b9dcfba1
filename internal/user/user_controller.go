package user

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/auth"
	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
)

type UserController struct {
	store storage.Storage
}

func NewUserController(store storage.Storage) *UserController {
	return &UserController{store: store}
}

func filterUsers(users []models.User) []auth.UserResponse {
	out := make([]auth.UserResponse, len(users))
	for i := range users {
		out[i] = auth.FilterUserRecord(&users[i])
	}
	return out
}

// ListUsers godoc
// @Summary List accounts
// @Tags users
// @Produce json
// @Success 200 {array} auth.UserResponse
// @Failure 403 {object} responses.ErrorResponse "Admin only"
// @Router /users [get]
// @Security BearerAuth
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.store.ListUsers(c.Request.Context())
	if err != nil {
		responses.FromError(c, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, filterUsers(users))
}

// CreateUser godoc
// @Summary Create a coach or admin account
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "Account"
// @Success 201 {object} auth.UserResponse
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Username taken"
// @Router /users [post]
// @Security BearerAuth
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !common.BindJSON(c, &req) {
		return
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "password hashing failed", logger.Err(err))
		responses.InternalServerError(c, "Error hashing password")
		return
	}
	u, err := uc.store.CreateUser(c.Request.Context(), models.NewUser{
		Username:    req.Username,
		Password:    hash,
		Role:        req.Role,
		AcademyName: req.AcademyName,
	})
	if err != nil {
		responses.FromError(c, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, auth.FilterUserRecord(u))
}

// UpdateUser godoc
// @Summary Update an account
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} auth.UserResponse
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /users/{id} [patch]
// @Security BearerAuth
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !common.BindJSON(c, &req) {
		return
	}
	patch := models.UserPatch{Username: req.Username, Role: req.Role, AcademyName: req.AcademyName}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "password hashing failed", logger.Err(err))
			responses.InternalServerError(c, "Error hashing password")
			return
		}
		patch.Password = &hash
	}
	u, err := uc.store.UpdateUser(c.Request.Context(), id, patch)
	if err != nil {
		responses.FromError(c, "Failed to update user", err)
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	c.JSON(http.StatusOK, auth.FilterUserRecord(u))
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} responses.ErrorResponse "Cannot delete yourself"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	if self, err := common.GetUserIDFromContext(c); err == nil && self == id {
		responses.BadRequest(c, "You cannot delete your own account")
		return
	}
	deleted, err := uc.store.DeleteUser(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to delete user", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "User")
		return
	}
	c.Status(http.StatusNoContent)
}

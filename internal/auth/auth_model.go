package auth

import (
	"time"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"coach@academy.com"`
	Password string `json:"password" binding:"required" example:"tennis123"`
}

// AuthResponse is returned on login. The token is also set as a cookie.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	Role        models.Role `json:"role"`
	AcademyName string      `json:"academyName"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// FilterUserRecord strips credentials from a stored account.
func FilterUserRecord(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		AcademyName: u.AcademyName,
		CreatedAt:   u.CreatedAt,
	}
}

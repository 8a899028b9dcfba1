package user

import "github.com/DhavalSuthar-24/acecourt/internal/models"

type CreateUserRequest struct {
	Username    string      `json:"username" binding:"required,min=3,max=100" example:"coach2@academy.com"`
	Password    string      `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Role        models.Role `json:"role" binding:"omitempty,user_role" example:"coach"`
	AcademyName string      `json:"academyName" binding:"required" example:"Elite Tennis Academy"`
}

type UpdateUserRequest struct {
	Username    *string      `json:"username,omitempty" binding:"omitempty,min=3,max=100"`
	Password    *string      `json:"password,omitempty" binding:"omitempty,min=8,max=72"`
	Role        *models.Role `json:"role,omitempty" binding:"omitempty,user_role"`
	AcademyName *string      `json:"academyName,omitempty" binding:"omitempty,min=1"`
}

package auth

import (
	"context"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// AuthRepository is the slice of storage the auth handlers need.
// storage.Storage satisfies it.
type AuthRepository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

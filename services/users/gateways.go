package users

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// UserGW is the account slice of the backend of record.
type UserGW interface {
	Authenticate(ctx context.Context, creds *models.LoginRequest) (*models.LoginResponse, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, req *models.PasswordUpdateRequest) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

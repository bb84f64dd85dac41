package users

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// UserUC defines the interface for account business logic. All persistence
// lives at the backend of record; this service validates, forwards and
// mints tokens.
type UserUC interface {
	// Login authenticates against the backend and attaches a relay-minted
	// JWT to the identity it returns.
	Login(ctx context.Context, creds *models.LoginRequest) (*models.LoginResponse, error)

	// CheckUser reports whether an account with the username exists.
	CheckUser(ctx context.Context, username string) (*models.User, error)

	// Register creates an account. Providers must carry a licence
	// category; requesters must not.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// UpdatePassword resets an account password.
	UpdatePassword(ctx context.Context, req *models.PasswordUpdateRequest) error

	// Profile fetches the account profile for the edit screens.
	Profile(ctx context.Context, userID string) (*models.User, error)
}

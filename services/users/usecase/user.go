package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guinchoja/backend/internal/pkg/constants"
	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	jwtpkg "github.com/guinchoja/backend/internal/pkg/jwt"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/users"
)

// UserUC implements account operations as validation plus forwarding; the
// backend of record owns every account row.
type UserUC struct {
	cfg     *models.Config
	backend users.UserGW
	logger  *logger.ZapLogger
}

// NewUserUC creates the account usecase.
func NewUserUC(cfg *models.Config, backend users.UserGW, log *logger.ZapLogger) *UserUC {
	return &UserUC{cfg: cfg, backend: backend, logger: log}
}

// Login forwards the credentials and mints a JWT on success.
func (uc *UserUC) Login(ctx context.Context, creds *models.LoginRequest) (*models.LoginResponse, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, users.ErrInvalidCredentials
	}

	resp, err := uc.backend.Authenticate(ctx, creds)
	if err != nil {
		return nil, uc.classify(err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(resp.ID, resp.Type, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	resp.Token = token
	resp.ExpiresAt = expiresAt

	uc.logger.Info("user logged in",
		logger.String("user_id", resp.ID),
		logger.String("tipo", resp.Type))
	return resp, nil
}

// CheckUser reports whether the username exists.
func (uc *UserUC) CheckUser(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, users.ErrUserNotFound
	}

	user, err := uc.backend.FindByUsername(ctx, username)
	if err != nil {
		return nil, uc.classify(err)
	}
	return user, nil
}

// Register validates the account rules and forwards the creation. The
// licence category (CNH) is required for providers and rejected for
// requesters.
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: username, password and email are required", users.ErrValidation)
	}

	switch req.Type {
	case constants.AccountTypeProvider:
		if strings.TrimSpace(req.CNH) == "" {
			return nil, fmt.Errorf("%w: cnh is required for %s accounts", users.ErrValidation, constants.AccountTypeProvider)
		}
	case constants.AccountTypeRequester:
		req.CNH = ""
	default:
		return nil, fmt.Errorf("%w: tipo must be %s or %s", users.ErrValidation,
			constants.AccountTypeRequester, constants.AccountTypeProvider)
	}

	user, err := uc.backend.CreateUser(ctx, req)
	if err != nil {
		return nil, uc.classify(err)
	}

	uc.logger.Info("account created",
		logger.String("user_id", user.ID),
		logger.String("tipo", user.Type))
	return user, nil
}

// UpdatePassword resets the account password.
func (uc *UserUC) UpdatePassword(ctx context.Context, req *models.PasswordUpdateRequest) error {
	if req.Username == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: username and newPassword are required", users.ErrValidation)
	}
	if err := uc.backend.UpdatePassword(ctx, req); err != nil {
		return uc.classify(err)
	}
	return nil
}

// Profile fetches the account profile.
func (uc *UserUC) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.backend.GetProfile(ctx, userID)
	if err != nil {
		return nil, uc.classify(err)
	}
	return user, nil
}

func (uc *UserUC) classify(err error) error {
	var httpErr *httppkg.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 401, 403:
			return users.ErrInvalidCredentials
		case 404:
			return users.ErrUserNotFound
		}
	}
	return err
}

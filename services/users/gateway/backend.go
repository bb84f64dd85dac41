package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
)

// UserGW talks to the backend of record's account endpoints.
type UserGW struct {
	client *httppkg.ResilientClient
}

// NewUserGW creates the gateway.
func NewUserGW(client *httppkg.ResilientClient) *UserGW {
	return &UserGW{client: client}
}

// Authenticate forwards a login.
func (g *UserGW) Authenticate(ctx context.Context, creds *models.LoginRequest) (*models.LoginResponse, error) {
	data, err := g.client.Do(ctx, http.MethodPost, g.client.BaseURL()+"/login", creds, nil)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var resp models.LoginResponse
	if err := utils.ParseJSONResponse(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}
	return &resp, nil
}

// FindByUsername checks account existence.
func (g *UserGW) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	body := map[string]string{"username": username}
	data, err := g.client.Do(ctx, http.MethodPost, g.client.BaseURL()+"/user", body, nil)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	var user models.User
	if err := utils.ParseJSONResponse(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &user, nil
}

// CreateUser forwards a registration.
func (g *UserGW) CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	data, err := g.client.Do(ctx, http.MethodPost, g.client.BaseURL()+"/register", req, nil)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	var user models.User
	if err := utils.ParseJSONResponse(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse created user: %w", err)
	}
	return &user, nil
}

// UpdatePassword forwards a password reset.
func (g *UserGW) UpdatePassword(ctx context.Context, req *models.PasswordUpdateRequest) error {
	if _, err := g.client.Do(ctx, http.MethodPut, g.client.BaseURL()+"/updatepassword", req, nil); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

// GetProfile fetches an account profile.
func (g *UserGW) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u := g.client.BaseURL() + "/userinfo/" + url.PathEscape(userID)
	data, err := g.client.Do(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}

	var user models.User
	if err := utils.ParseJSONResponse(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &user, nil
}

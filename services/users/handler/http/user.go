package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
	"github.com/guinchoja/backend/services/users"
)

// UserHandler exposes the account endpoints.
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates the HTTP handler.
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Login handles POST /login
func (h *UserHandler) Login(c echo.Context) error {
	var creds models.LoginRequest
	if err := c.Bind(&creds); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &creds)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// CheckUser handles POST /user
func (h *UserHandler) CheckUser(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if body.Username == "" {
		return utils.BadRequestResponse(c, "username is required")
	}

	user, err := h.userUC.CheckUser(c.Request().Context(), body.Username)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User found", user)
}

// Register handles POST /register
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Account created", user)
}

// UpdatePassword handles PUT /updatepassword
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var req models.PasswordUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if err := h.userUC.UpdatePassword(c.Request().Context(), &req); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}

// Profile handles GET /userinfo/:id
func (h *UserHandler) Profile(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	user, err := h.userUC.Profile(c.Request().Context(), userID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}

func (h *UserHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, users.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, users.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, users.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.BadGatewayResponse(c, "Backend unavailable")
	}
}

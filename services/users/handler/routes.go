package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/middleware"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/users"
	httpHandler "github.com/guinchoja/backend/services/users/handler/http"
)

// Handler wires the account endpoints onto the relay's router.
type Handler struct {
	userHTTP *httpHandler.UserHandler
	jwtCfg   models.JWTConfig
}

// NewHandler creates the combined handler.
func NewHandler(userUC users.UserUC, jwtCfg models.JWTConfig) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC),
		jwtCfg:   jwtCfg,
	}
}

// RegisterRoutes registers the account routes. The profile endpoint sits
// behind the JWT guard; everything else is reachable before login.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/login", h.userHTTP.Login)
	e.POST("/user", h.userHTTP.CheckUser)
	e.POST("/register", h.userHTTP.Register)
	e.PUT("/updatepassword", h.userHTTP.UpdatePassword)

	protected := e.Group("", middleware.JWTAuthMiddleware(h.jwtCfg))
	protected.GET("/userinfo/:id", h.userHTTP.Profile)
}

package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// SessionStore persists the current-user record across restarts.
type SessionStore interface {
	Load() (Actor, bool)
	Save(actor Actor) error
	Clear() error
}

// Handler exposes the login, logout, and current-user endpoints.
type Handler struct {
	service  *Service
	sessions SessionStore
	logger   zerolog.Logger
}

func NewHandler(service *Service, sessions SessionStore, logger zerolog.Logger) *Handler {
	return &Handler{service: service, sessions: sessions, logger: logger}
}

// RegisterPublicRoutes mounts the endpoints reachable without a token.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

// RegisterRoutes mounts the endpoints that require authentication.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.Me)
	g.GET("/auth/session", h.Session)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		}
		return err
	}

	if err := h.sessions.Save(result.Actor); err != nil {
		// A broken session file must not block login.
		h.logger.Warn().Err(err).Msg("saving session record")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "clearing session")
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the persisted current-user record, which may outlive
// the token that created it.
func (h *Handler) Session(c echo.Context) error {
	actor, ok := h.sessions.Load()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no active session")
	}
	return c.JSON(http.StatusOK, actor)
}

func (h *Handler) Me(c echo.Context) error {
	actor := ActorFromContext(c.Request().Context())
	if actor.Username == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	return c.JSON(http.StatusOK, actor)
}

package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mysage/portal/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard", h.GetOverview)
}

func (h *Handler) GetOverview(c echo.Context) error {
	actor := auth.ActorFromContext(c.Request().Context())
	overview, err := h.svc.Overview(c.Request().Context(), actor)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, overview)
}

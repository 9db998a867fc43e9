package report

import (
	"errors"
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
	api.GET("/reports/templates", h.ListTemplates)
	api.GET("/reports", h.ListReports)
	api.POST("/reports", h.GenerateReport)
	api.GET("/reports/:id", h.GetReport)
}

func (h *Handler) ListTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Templates(c.QueryParam("category")))
}

func (h *Handler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List())
}

func (h *Handler) GetReport(c echo.Context) error {
	rpt, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, rpt)
}

type generateRequest struct {
	Template string `json:"template"`
	Format   string `json:"format"`
}

func (h *Handler) GenerateReport(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Template == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "template is required")
	}

	actor := auth.ActorFromContext(c.Request().Context())
	rpt, err := h.svc.Generate(actor, req.Template, req.Format)
	if err != nil {
		if errors.Is(err, ErrUnknownTemplate) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusAccepted, rpt)
}

package visit

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mysage/portal/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/visits", h.ListVisits)
	api.GET("/visits/providers", h.GetProviders)
	api.GET("/visits/:id", h.GetVisit)
	api.PATCH("/visits/:id/status", h.UpdateStatus)
}

type listResponse struct {
	pagination.Response
	Summary Summary `json:"summary"`
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func filterFromQuery(c echo.Context) Filter {
	return Filter{
		Search:    c.QueryParam("search"),
		Status:    c.QueryParam("status"),
		Provider:  c.QueryParam("provider"),
		VisitType: c.QueryParam("visitType"),
		From:      parseDate(c.QueryParam("from")),
		To:        parseDate(c.QueryParam("to")),
	}
}

func (h *Handler) ListVisits(c echo.Context) error {
	visits, err := h.svc.List(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summary := h.svc.Summarize(visits)
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(visits))

	return c.JSON(http.StatusOK, listResponse{
		Response: *pagination.NewResponse(visits[lo:hi], len(visits), pg.Limit, pg.Offset),
		Summary:  summary,
	})
}

func (h *Handler) GetVisit(c echo.Context) error {
	v, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "visit not found")
	}
	return c.JSON(http.StatusOK, v)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	v, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "visit not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) GetProviders(c echo.Context) error {
	providers, err := h.svc.Providers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, providers)
}

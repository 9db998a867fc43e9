package priorauth

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
	api.GET("/pa-requests", h.ListRequests)
	api.GET("/pa-requests/payers", h.GetPayers)
	api.GET("/pa-requests/:id", h.GetRequest)
	api.PATCH("/pa-requests/:id/status", h.UpdateStatus)
}

type listResponse struct {
	pagination.Response
	Summary Summary `json:"summary"`
}

// parseDate accepts YYYY-MM-DD bounds; anything else counts as unset.
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
		Search:  c.QueryParam("search"),
		Status:  c.QueryParam("status"),
		Payer:   c.QueryParam("payer"),
		Urgency: c.QueryParam("urgency"),
		From:    parseDate(c.QueryParam("from")),
		To:      parseDate(c.QueryParam("to")),
	}
}

func (h *Handler) ListRequests(c echo.Context) error {
	requests, err := h.svc.List(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summary := h.svc.Summarize(requests)
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(requests))

	return c.JSON(http.StatusOK, listResponse{
		Response: *pagination.NewResponse(requests[lo:hi], len(requests), pg.Limit, pg.Offset),
		Summary:  summary,
	})
}

func (h *Handler) GetRequest(c echo.Context) error {
	req, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "pa request not found")
	}
	return c.JSON(http.StatusOK, req)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pa, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "pa request not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pa)
}

func (h *Handler) GetPayers(c echo.Context) error {
	payers, err := h.svc.Payers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, payers)
}

package queue

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mysage/portal/internal/platform/auth"
	"github.com/mysage/portal/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/queue", h.ListTasks)
	api.GET("/queue/filters", h.GetFilterOptions)
	api.GET("/queue/:id", h.GetTask)
	api.PATCH("/queue/:id/status", h.UpdateStatus)
	api.POST("/queue/:id/notes", h.AddNote)
}

type listResponse struct {
	pagination.Response
	Summary Summary `json:"summary"`
}

func filterFromQuery(c echo.Context) Filter {
	return Filter{
		Search:        c.QueryParam("search"),
		Status:        c.QueryParam("status"),
		Priority:      c.QueryParam("priority"),
		Provider:      c.QueryParam("provider"),
		Portfolio:     c.QueryParam("portfolio"),
		Program:       c.QueryParam("program"),
		Queue:         c.QueryParam("queue"),
		Disposition:   c.QueryParam("disposition"),
		Insurance:     c.QueryParam("insurance"),
		InsuranceType: c.QueryParam("insuranceType"),
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	actor := auth.ActorFromContext(c.Request().Context())
	tasks, err := h.svc.List(c.Request().Context(), actor, filterFromQuery(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summary := h.svc.Summarize(tasks)
	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(tasks))

	return c.JSON(http.StatusOK, listResponse{
		Response: *pagination.NewResponse(tasks[lo:hi], len(tasks), pg.Limit, pg.Offset),
		Summary:  summary,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "queue task not found")
	}
	return c.JSON(http.StatusOK, task)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "queue task not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, task)
}

type noteRequest struct {
	Text string `json:"text"`
}

func (h *Handler) AddNote(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.svc.AppendNote(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "queue task not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetFilterOptions(c echo.Context) error {
	opts, err := h.svc.FilterOptions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, opts)
}

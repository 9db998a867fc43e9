package queue

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mysage/portal/internal/platform/auth"
)

func newTestHandler() *Handler {
	return NewHandler(newTestService())
}

func request(method, target string, body string, actor auth.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req = req.WithContext(auth.WithActor(req.Context(), actor))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type taskListPayload struct {
	Data    []QueueTask `json:"data"`
	Summary Summary     `json:"summary"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	HasMore bool        `json:"has_more"`
}

func TestHandler_ListTasks(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodGet, "/api/v1/queue", "", adminActor)

	if err := h.ListTasks(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp taskListPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 6 || len(resp.Data) != 6 {
		t.Errorf("expected 6 tasks, got total=%d len=%d", resp.Total, len(resp.Data))
	}
	if resp.Summary.Pending != 3 {
		t.Errorf("expected 3 pending, got %d", resp.Summary.Pending)
	}
}

func TestHandler_ListTasks_StaffScoped(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodGet, "/api/v1/queue", "", staffActor)

	if err := h.ListTasks(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp taskListPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 4 {
		t.Errorf("expected 4 tasks for staff, got %d", resp.Total)
	}
}

func TestHandler_ListTasks_QueryFilters(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodGet, "/api/v1/queue?status=Pending&priority=High", "", adminActor)

	if err := h.ListTasks(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp taskListPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected 2 tasks, got %d", resp.Total)
	}
}

func TestHandler_ListTasks_PaginationEnvelope(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodGet, "/api/v1/queue?limit=2&offset=0", "", adminActor)

	if err := h.ListTasks(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp taskListPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Total != 6 {
		t.Errorf("expected page of 2 from 6, got len=%d total=%d", len(resp.Data), resp.Total)
	}
	if resp.Limit != 2 || resp.Offset != 0 {
		t.Errorf("unexpected envelope: limit=%d offset=%d", resp.Limit, resp.Offset)
	}
	if !resp.HasMore {
		t.Error("expected has_more for first page of 6")
	}

	c, rec = request(http.MethodGet, "/api/v1/queue?limit=4&offset=4", "", adminActor)
	if err := h.ListTasks(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp = taskListPayload{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 2 || resp.HasMore {
		t.Errorf("expected final page of 2 with no more, got len=%d has_more=%v", len(resp.Data), resp.HasMore)
	}
}

func TestHandler_GetTask(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodGet, "/api/v1/queue/Q001", "", adminActor)
	c.SetParamNames("id")
	c.SetParamValues("Q001")

	if err := h.GetTask(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var task QueueTask
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if task.PatientName != "John Smith" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestHandler_GetTask_NotFound(t *testing.T) {
	h := newTestHandler()
	c, _ := request(http.MethodGet, "/api/v1/queue/Q999", "", adminActor)
	c.SetParamNames("id")
	c.SetParamValues("Q999")

	err := h.GetTask(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodPatch, "/api/v1/queue/Q001/status", `{"status":"In Progress"}`, staffActor)
	c.SetParamNames("id")
	c.SetParamValues("Q001")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var task QueueTask
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if task.Status != StatusInProgress {
		t.Errorf("expected In Progress, got %s", task.Status)
	}
}

func TestHandler_UpdateStatus_InvalidValue(t *testing.T) {
	h := newTestHandler()
	c, _ := request(http.MethodPatch, "/api/v1/queue/Q001/status", `{"status":"Done"}`, staffActor)
	c.SetParamNames("id")
	c.SetParamValues("Q001")

	err := h.UpdateStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_AddNote(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodPost, "/api/v1/queue/Q003/notes", `{"text":"insurance confirmed coverage"}`, staffActor)
	c.SetParamNames("id")
	c.SetParamValues("Q003")

	if err := h.AddNote(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var task QueueTask
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(task.Notes) != 1 || !strings.Contains(task.Notes[0], "insurance confirmed coverage") {
		t.Errorf("unexpected notes: %v", task.Notes)
	}
}

func TestHandler_GetFilterOptions(t *testing.T) {
	h := newTestHandler()
	c, rec := request(http.MethodGet, "/api/v1/queue/filters", "", adminActor)

	if err := h.GetFilterOptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var opts FilterOptions
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(opts.Insurances) != 6 {
		t.Errorf("expected 6 insurances, got %v", opts.Insurances)
	}
}

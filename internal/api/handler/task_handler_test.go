package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/door2door/taskmarket-api/internal/core/domain"
	"github.com/door2door/taskmarket-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, input ports.CreateTaskInput) (*ports.CreateTaskResult, error)
	assignFn func(ctx context.Context, input ports.AssignTaskInput) error
	getFn    func(ctx context.Context, id int64) (*domain.Task, error)
	listFn   func(ctx context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error)
}

func (s *stubTaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubTaskService) Assign(ctx context.Context, input ports.AssignTaskInput) error {
	return s.assignFn(ctx, input)
}

func (s *stubTaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.getFn(ctx, id)
}

func (s *stubTaskService) List(ctx context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
	return s.listFn(ctx, input)
}

func newTaskContext(t *testing.T, method, target, body, email string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}
	return c, rec
}

func TestTaskHandler_Create_Success(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(_ context.Context, input ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
			if input.CreatorEmail != "alice@example.com" {
				t.Fatalf("unexpected creator: %q", input.CreatorEmail)
			}
			if input.Compensation != 2000 || input.TzOffsetMins != -120 {
				t.Fatalf("numeric fields not parsed: %+v", input)
			}
			return &ports.CreateTaskResult{ID: 7, CreationTime: 1, Deadline: 2}, nil
		},
	}
	h := NewTaskHandler(stub)

	body := `{"title":"Paint the fence","compensation":"2000","deadline":"2020-06-01T10:00","clientTzOffsetInMins":"-120"}`
	c, rec := newTaskContext(t, http.MethodPost, "/v1/tasks", body, "alice@example.com")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/v1/tasks/7" {
		t.Errorf("expected Location /v1/tasks/7, got %q", loc)
	}

	var resp createTaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 7 || resp.Links.Self != "/v1/tasks/7" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestTaskHandler_Create_MissingIdentity(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{})

	c, _ := newTaskContext(t, http.MethodPost, "/v1/tasks", `{}`, "")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestTaskHandler_Create_BadCompensation(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		createFn: func(context.Context, ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, _ := newTaskContext(t, http.MethodPost, "/v1/tasks", `{"compensation":"lots"}`, "alice@example.com")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTaskHandler_Create_NegativeCompensation(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		createFn: func(context.Context, ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, _ := newTaskContext(t, http.MethodPost, "/v1/tasks", `{"compensation":"-5"}`, "alice@example.com")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestTaskHandler_Create_DefaultsEmptyFields(t *testing.T) {
	var captured ports.CreateTaskInput
	h := NewTaskHandler(&stubTaskService{
		createFn: func(_ context.Context, input ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
			captured = input
			return &ports.CreateTaskResult{ID: 1}, nil
		},
	})

	c, rec := newTaskContext(t, http.MethodPost, "/v1/tasks", `{}`, "alice@example.com")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Compensation != 0 || captured.TzOffsetMins != 0 || captured.Title != "" || captured.Deadline != "" {
		t.Errorf("empty form must default to zero values: %+v", captured)
	}
}

func TestTaskHandler_Assign_Success(t *testing.T) {
	var captured ports.AssignTaskInput
	h := NewTaskHandler(&stubTaskService{
		assignFn: func(_ context.Context, input ports.AssignTaskInput) error {
			captured = input
			return nil
		},
	})

	c, rec := newTaskContext(t, http.MethodPost, "/v1/tasks/5/assign", `{"assigneeId":"42"}`, "alice@example.com")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.TaskID != 5 || captured.AssigneeID != 42 {
		t.Errorf("unexpected input: %+v", captured)
	}
}

func TestTaskHandler_Assign_BadTaskID(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		assignFn: func(context.Context, ports.AssignTaskInput) error {
			t.Fatal("service must not be called")
			return nil
		},
	})

	c, _ := newTaskContext(t, http.MethodPost, "/v1/tasks/abc/assign", "", "alice@example.com")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Assign(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTaskHandler_Assign_MissingAssigneeDefaultsToSentinel(t *testing.T) {
	var captured ports.AssignTaskInput
	h := NewTaskHandler(&stubTaskService{
		assignFn: func(_ context.Context, input ports.AssignTaskInput) error {
			captured = input
			return nil
		},
	})

	c, _ := newTaskContext(t, http.MethodPost, "/v1/tasks/5/assign", "", "alice@example.com")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if captured.AssigneeID != domain.NoAssignee {
		t.Errorf("expected sentinel %d, got %d", domain.NoAssignee, captured.AssigneeID)
	}
}

func TestTaskHandler_Assign_NotFoundPropagates(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		assignFn: func(context.Context, ports.AssignTaskInput) error {
			return domain.ErrTaskNotFound
		},
	})

	c, _ := newTaskContext(t, http.MethodPost, "/v1/tasks/999/assign", "", "alice@example.com")
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := h.Assign(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound to propagate, got %v", err)
	}
}

func TestTaskHandler_Get_Success(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{
		getFn: func(_ context.Context, id int64) (*domain.Task, error) {
			return &domain.Task{ID: id, Title: "Walk the dog", Active: true, AssigneeID: domain.NoAssignee}, nil
		},
	})

	c, rec := newTaskContext(t, http.MethodGet, "/v1/tasks/3", "", "alice@example.com")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp taskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 3 || resp.Title != "Walk the dog" || resp.Links.Self != "/v1/tasks/3" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestTaskHandler_List_ParsesFilters(t *testing.T) {
	var captured ports.ListTasksInput
	h := NewTaskHandler(&stubTaskService{
		listFn: func(_ context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
			captured = input
			return &ports.ListTasksResult{Page: 2, Limit: 10}, nil
		},
	})

	c, rec := newTaskContext(t, http.MethodGet, "/v1/tasks?assigned=false&active=true&page=2&limit=10", "", "alice@example.com")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Assigned == nil || *captured.Assigned {
		t.Error("assigned filter not parsed")
	}
	if captured.Active == nil || !*captured.Active {
		t.Error("active filter not parsed")
	}
	if captured.Page != 2 || captured.Limit != 10 {
		t.Errorf("paging not parsed: %+v", captured)
	}
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/door2door/taskmarket-api/internal/api/metrics"
	"github.com/door2door/taskmarket-api/internal/core/domain"
	"github.com/door2door/taskmarket-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /v1/tasks.
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  createTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	compensation, err := parseLongField(req.Compensation, 0)
	if err != nil {
		metrics.TaskRejectionsTotal.WithLabelValues("create", "bad_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "compensation must be an integer")
	}
	if compensation < 0 {
		metrics.TaskRejectionsTotal.WithLabelValues("create", "bad_input").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "compensation must be non-negative")
	}

	tzOffsetMins, err := parseLongField(req.TzOffsetMins, 0)
	if err != nil {
		metrics.TaskRejectionsTotal.WithLabelValues("create", "bad_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "clientTzOffsetInMins must be an integer")
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		CreatorEmail: email,
		Title:        req.Title,
		Details:      req.Details,
		Compensation: compensation,
		Deadline:     req.Deadline,
		TzOffsetMins: tzOffsetMins,
		Address:      req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.TaskRejectionsTotal.WithLabelValues("create", "user_not_found").Inc()
		case errors.Is(err, domain.ErrProfileIncomplete):
			metrics.TaskRejectionsTotal.WithLabelValues("create", "profile_incomplete").Inc()
		}
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	if result.Deadline == domain.DeadlineInvalid {
		metrics.DeadlineParseFailuresTotal.Inc()
	}

	self := taskSelfLink(result.ID)
	c.Response().Header().Set(echo.HeaderLocation, self)
	return c.JSON(http.StatusCreated, createTaskResponse{
		ID:           result.ID,
		CreationTime: result.CreationTime,
		Deadline:     result.Deadline,
		Links:        taskLinks{Self: self},
	})
}

// Assign handles POST /v1/tasks/:id/assign (GET is also routed here for
// compatibility with link-based assignment).
//
// @Summary      Assign a task to a user
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true   "Task id"
// @Param        body  body      assignTaskRequest  false  "Assignee"
// @Success      200   {object}  assignTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/{id}/assign [post]
func (h *TaskHandler) Assign(c echo.Context) error {
	if _, err := ctxEmail(c); err != nil {
		return err
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		metrics.TaskRejectionsTotal.WithLabelValues("assign", "bad_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "task id must be an integer")
	}

	var req assignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Absent or unparseable assignee falls back to the unset sentinel,
	// matching the form's lenient numeric defaults.
	assigneeID, err := parseLongField(req.AssigneeID, domain.NoAssignee)
	if err != nil {
		assigneeID = domain.NoAssignee
	}

	if err := h.service.Assign(c.Request().Context(), ports.AssignTaskInput{
		TaskID:     taskID,
		AssigneeID: assigneeID,
	}); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			metrics.TaskRejectionsTotal.WithLabelValues("assign", "task_not_found").Inc()
		}
		return err
	}

	metrics.TasksAssignedTotal.Inc()
	return c.JSON(http.StatusOK, assignTaskResponse{
		TaskID:     taskID,
		AssigneeID: assigneeID,
		Assigned:   true,
		Links:      taskLinks{Self: taskSelfLink(taskID)},
	})
}

// Get handles GET /v1/tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "task id must be an integer")
	}

	task, err := h.service.Get(c.Request().Context(), taskID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// List handles GET /v1/tasks.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        assigned    query     bool  false  "Filter by assignment state"
// @Param        active      query     bool  false  "Filter by active state"
// @Param        creator_id  query     int   false  "Filter by creator"
// @Param        page        query     int   false  "Page (1-based)"
// @Param        limit       query     int   false  "Page size (max 100)"
// @Success      200       {object}  listTasksResponse
// @Failure      400       {object}  errorResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	input := ports.ListTasksInput{}

	if v := c.QueryParam("assigned"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "assigned must be a boolean")
		}
		input.Assigned = &b
	}
	if v := c.QueryParam("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active must be a boolean")
		}
		input.Active = &b
	}
	if v := c.QueryParam("creator_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "creator_id must be an integer")
		}
		input.CreatorID = id
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	items := make([]taskResponse, len(result.Items))
	for i, t := range result.Items {
		items[i] = toTaskResponse(t)
	}
	return c.JSON(http.StatusOK, listTasksResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// parseLongField parses an integer-as-text form field. An empty value yields
// defaultValue; a non-empty unparseable value is an error the caller decides
// how to surface.
func parseLongField(value string, defaultValue int64) (int64, error) {
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

func taskSelfLink(id int64) string {
	return fmt.Sprintf("/v1/tasks/%d", id)
}

package ports

import (
	"context"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. CreatorEmail
// is the caller's identity resolved by the transport layer; the raw deadline
// string and timezone offset are converted by the service.
type CreateTaskInput struct {
	CreatorEmail string
	Title        string
	Details      string
	Compensation int64
	Deadline     string // client-local wall clock, layout 2006-01-02T15:04
	TzOffsetMins int64  // minutes to add to the naive UTC parse
	Address      string
}

// CreateTaskResult is returned by the service after creating a task.
type CreateTaskResult struct {
	ID           int64
	CreationTime int64
	// Deadline is the converted epoch-millis deadline, or
	// domain.DeadlineInvalid when the input string did not parse.
	Deadline int64
}

// AssignTaskInput carries the parameters of an assignment.
type AssignTaskInput struct {
	TaskID     int64
	AssigneeID int64
}

// ListTasksInput carries all parameters for the list endpoint.
type ListTasksInput struct {
	Assigned  *bool
	Active    *bool
	CreatorID int64 // 0 = no filter
	Page      int
	Limit     int
}

// ListTasksResult is returned by List.
type ListTasksResult struct {
	Items      []*domain.Task
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*CreateTaskResult, error)
	Assign(ctx context.Context, input AssignTaskInput) error
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) (*ListTasksResult, error)
}

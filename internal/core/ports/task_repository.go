package ports

import (
	"context"

	"github.com/door2door/taskmarket-api/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
type ListTasksFilter struct {
	Assigned  *bool // nil = no filter
	Active    *bool // nil = no filter
	CreatorID int64 // 0 = no filter
	Page      int   // 1-based
	Limit     int   // max rows per page (capped at 100 by service)
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// Create persists a new task and returns the store-assigned id. The
	// task's id must be zero (unpersisted) on entry; a non-zero id is
	// refused with domain.ErrRecordMismatch.
	Create(ctx context.Context, t *domain.Task) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// Update replaces the stored task whose id matches t.ID. When no such
	// record exists, domain.ErrTaskNotFound is returned and nothing is
	// written.
	Update(ctx context.Context, t *domain.Task) error
	// List returns a page of tasks matching filter and the total count.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, int64, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/door2door/taskmarket-api/internal/core/domain"
	"github.com/door2door/taskmarket-api/internal/core/ports"
)

// deadlineLayout is the wall-clock format sent by the creation form.
const deadlineLayout = "2006-01-02T15:04"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TaskCache abstracts the read-through view cache (Redis).
type TaskCache interface {
	// Find returns the cached task, or (nil, nil) on a miss.
	Find(ctx context.Context, id int64) (*domain.Task, error)
	Store(ctx context.Context, t *domain.Task) error
	Invalidate(ctx context.Context, id int64) error
}

type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	cache  TaskCache // optional, may be nil
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, cache TaskCache, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, cache: cache, logger: logger}
}

// Create builds and persists a new task on behalf of the caller identified by
// CreatorEmail. The caller must have a registered account with a complete
// profile; otherwise the task is rejected and nothing is written. An
// unparseable deadline does not reject the task: the record is stored with
// the DeadlineInvalid sentinel.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*ports.CreateTaskResult, error) {
	creator, err := s.users.FindByEmail(ctx, input.CreatorEmail)
	if err != nil {
		return nil, fmt.Errorf("create task: resolve creator: %w", err)
	}
	if !creator.IsProfileComplete() {
		return nil, fmt.Errorf("create task: %w", domain.ErrProfileIncomplete)
	}

	deadline := deadlineFromLocal(input.Deadline, input.TzOffsetMins)
	if deadline == domain.DeadlineInvalid {
		s.logger.Warn().
			Str("deadline", input.Deadline).
			Int64("creator_id", creator.ID).
			Msg("unparseable deadline, storing invalid sentinel")
	}

	task := &domain.Task{
		Title:        input.Title,
		Details:      input.Details,
		Compensation: input.Compensation,
		CreatorID:    creator.ID,
		CreationTime: time.Now().UTC().UnixMilli(),
		Deadline:     deadline,
		Address:      input.Address,
		Assigned:     false,
		AssigneeID:   domain.NoAssignee,
		Active:       true,
	}

	id, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Int64("creator_id", creator.ID).Msg("failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info().
		Int64("task_id", id).
		Int64("creator_id", creator.ID).
		Int64("compensation", task.Compensation).
		Msg("task created")

	return &ports.CreateTaskResult{
		ID:           id,
		CreationTime: task.CreationTime,
		Deadline:     deadline,
	}, nil
}

// Assign sets the assignee on an existing task. Any authenticated caller may
// assign any task; there is no ownership check. The operation is a plain
// load-mutate-put: concurrent assigns race and the last writer wins.
func (s *TaskService) Assign(ctx context.Context, input ports.AssignTaskInput) error {
	task, err := s.tasks.FindByID(ctx, input.TaskID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("task_id", input.TaskID).Msg("assign target not found")
		return fmt.Errorf("assign task: %w", err)
	}

	task.AssigneeID = input.AssigneeID
	task.Assigned = true

	if err := s.tasks.Update(ctx, task); err != nil {
		return fmt.Errorf("assign task: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, task.ID); err != nil {
			s.logger.Warn().Err(err).Int64("task_id", task.ID).Msg("failed to invalidate task cache")
		}
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("assignee_id", input.AssigneeID).
		Msg("task assigned")

	return nil
}

// Get retrieves a single task, read-through from the cache when one is
// configured. Cache failures are non-fatal and fall back to the repository.
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if s.cache != nil {
		cached, err := s.cache.Find(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int64("task_id", id).Msg("task cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Store(ctx, task); err != nil {
			s.logger.Warn().Err(err).Int64("task_id", id).Msg("task cache write failed")
		}
	}
	return task, nil
}

// List returns a page of tasks matching the given filters.
func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.tasks.List(ctx, ports.ListTasksFilter{
		Assigned:  input.Assigned,
		Active:    input.Active,
		CreatorID: input.CreatorID,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListTasksResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// deadlineFromLocal converts a client-local wall-clock string plus the
// client's timezone offset into an absolute epoch-millis instant: the string
// is parsed as UTC wall-clock fields, then tzOffsetMins minutes are added.
// Returns DeadlineInvalid when the string does not parse.
func deadlineFromLocal(value string, tzOffsetMins int64) int64 {
	t, err := time.ParseInLocation(deadlineLayout, value, time.UTC)
	if err != nil {
		return domain.DeadlineInvalid
	}
	return t.UnixMilli() + tzOffsetMins*60_000
}

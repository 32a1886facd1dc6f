package handler

import "github.com/door2door/taskmarket-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createTaskRequest mirrors the creation form. All fields are optional and
// default to empty / zero; the numeric fields arrive as text and are parsed
// explicitly so a malformed value is a deliberate 400 instead of a silent
// coercion.
type createTaskRequest struct {
	Title        string `json:"title" form:"title"`
	Details      string `json:"details" form:"details"`
	Compensation string `json:"compensation" form:"compensation"`
	Deadline     string `json:"deadline" form:"deadline"`
	TzOffsetMins string `json:"clientTzOffsetInMins" form:"clientTzOffsetInMins"`
	Address      string `json:"address" form:"address"`
}

type assignTaskRequest struct {
	AssigneeID string `json:"assigneeId" form:"assigneeId" query:"assigneeId"`
}

type updateProfileRequest struct {
	Name  string `json:"name" form:"name"`
	Phone string `json:"phone" form:"phone"`
}

// --- Response types ---

type taskLinks struct {
	Self string `json:"self"`
}

type createTaskResponse struct {
	ID           int64     `json:"id"`
	CreationTime int64     `json:"creation_time"`
	Deadline     int64     `json:"deadline"`
	Links        taskLinks `json:"_links"`
}

type assignTaskResponse struct {
	TaskID     int64     `json:"task_id"`
	AssigneeID int64     `json:"assignee_id"`
	Assigned   bool      `json:"assigned"`
	Links      taskLinks `json:"_links"`
}

type taskResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Details          string    `json:"details"`
	Compensation     int64     `json:"compensation"`
	CreatorID        int64     `json:"creator_id"`
	CreationTime     int64     `json:"creation_time"`
	Deadline         int64     `json:"deadline"`
	Address          string    `json:"address"`
	Assigned         bool      `json:"assigned"`
	AssigneeID       int64     `json:"assignee_id"`
	CompletionRating float64   `json:"completion_rating"`
	Active           bool      `json:"active"`
	Links            taskLinks `json:"_links"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listTasksResponse struct {
	Data       []taskResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type profileResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ProfileComplete bool   `json:"profile_complete"`
}

// --- Mappers ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:               t.ID,
		Title:            t.Title,
		Details:          t.Details,
		Compensation:     t.Compensation,
		CreatorID:        t.CreatorID,
		CreationTime:     t.CreationTime,
		Deadline:         t.Deadline,
		Address:          t.Address,
		Assigned:         t.Assigned,
		AssigneeID:       t.AssigneeID,
		CompletionRating: t.CompletionRating,
		Active:           t.Active,
		Links:            taskLinks{Self: taskSelfLink(t.ID)},
	}
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		ProfileComplete: u.IsProfileComplete(),
	}
}

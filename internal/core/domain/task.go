package domain

// Sentinel values for numeric fields that can be "unset".
const (
	// DeadlineInvalid marks a deadline string that failed to parse. It is a
	// distinguishable invalid state, never a real point in time.
	DeadlineInvalid int64 = -1

	// NoAssignee is the assignee id of a task that has not been assigned yet.
	NoAssignee int64 = -1
)

// Task is the core aggregate: one unit of paid work offered on the marketplace.
type Task struct {
	ID               int64   `json:"id" bson:"_id"`
	Title            string  `json:"title" bson:"title"`
	Details          string  `json:"details" bson:"details"`
	Compensation     int64   `json:"compensation" bson:"compensation"`
	CreatorID        int64   `json:"creator_id" bson:"creator_id"`
	CreationTime     int64   `json:"creation_time" bson:"creation_time"` // epoch millis
	Deadline         int64   `json:"deadline" bson:"deadline"`           // epoch millis, or DeadlineInvalid
	Address          string  `json:"address" bson:"address"`
	Assigned         bool    `json:"assigned" bson:"assigned"`
	AssigneeID       int64   `json:"assignee_id" bson:"assignee_id"`
	CompletionRating float64 `json:"completion_rating" bson:"completion_rating"`
	Active           bool    `json:"active" bson:"active"`
}

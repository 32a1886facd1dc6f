package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/door2door/taskmarket-api/internal/core/domain"
	"github.com/door2door/taskmarket-api/internal/core/ports"
)

const collectionTasks = "tasks"

// TaskRepository implements ports.TaskRepository over the tasks collection.
// Documents are keyed by a numeric _id allocated from the counters sequence.
type TaskRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{db: db, col: db.Collection(collectionTasks)}
}

// Create allocates the next task id and inserts the document. A task that
// already carries an id is refused: persisted ids are immutable and must
// never be reused for a new record.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID != 0 {
		return 0, domain.ErrRecordMismatch
	}

	id, err := nextID(ctx, r.db, collectionTasks)
	if err != nil {
		return 0, err
	}
	t.ID = id

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return 0, err
	}
	return id, nil
}

// FindByID retrieves a task by its numeric id.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Task
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update replaces the stored document matching t.ID. The filter on _id
// guarantees no other record can be touched; a zero id or a missing record
// writes nothing.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == 0 {
		return domain.ErrRecordMismatch
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// List returns a page of tasks matching filter, newest first, and the total
// match count.
func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Assigned != nil {
		query["assigned"] = *filter.Assigned
	}
	if filter.Active != nil {
		query["active"] = *filter.Active
	}
	if filter.CreatorID != 0 {
		query["creator_id"] = filter.CreatorID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "creation_time", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// EnsureIndexes creates necessary indexes on the tasks collection.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "assigned", Value: 1}, {Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "creation_time", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

package queue

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("queue task not found")

// Repository is the storage contract for queue tasks.
type Repository interface {
	List(ctx context.Context) ([]QueueTask, error)
	GetByID(ctx context.Context, id string) (QueueTask, error)
	UpdateStatus(ctx context.Context, id, status string) (QueueTask, error)
	AppendNote(ctx context.Context, id, note string) (QueueTask, error)
}

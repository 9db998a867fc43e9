package priorauth

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no request has the requested id.
var ErrNotFound = errors.New("pa request not found")

// Repository is the storage contract for PA requests.
type Repository interface {
	List(ctx context.Context) ([]PARequest, error)
	GetByID(ctx context.Context, id string) (PARequest, error)
	UpdateStatus(ctx context.Context, id, status string) (PARequest, error)
}

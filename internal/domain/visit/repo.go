package visit

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no visit has the requested id.
var ErrNotFound = errors.New("visit not found")

// Repository is the storage contract for EV visits.
type Repository interface {
	List(ctx context.Context) ([]EVVisit, error)
	GetByID(ctx context.Context, id string) (EVVisit, error)
	UpdateStatus(ctx context.Context, id, status string) (EVVisit, error)
}

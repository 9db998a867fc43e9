package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mysage/portal/internal/platform/auth"
	"github.com/mysage/portal/pkg/listfilter"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusInProgress: true,
	StatusCompleted: true, StatusOnHold: true,
}

// Filter holds the queue screen's filter selections. Zero values and the
// "all" sentinel pass everything.
type Filter struct {
	Search        string
	Status        string
	Priority      string
	Provider      string
	Portfolio     string
	Program       string
	Queue         string
	Disposition   string
	Insurance     string
	InsuranceType string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the tasks visible to the actor after applying the filter,
// in store order. Staff actors only see tasks assigned to them.
func (s *Service) List(ctx context.Context, actor auth.Actor, f Filter) ([]QueueTask, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	preds := []listfilter.Predicate[QueueTask]{
		listfilter.TextSearch[QueueTask](f.Search, func(t QueueTask) []string {
			return []string{t.PatientName, t.PatientID, t.TaskType}
		}),
		listfilter.Equals[QueueTask](f.Status, func(t QueueTask) string { return t.Status }),
		listfilter.Equals[QueueTask](f.Priority, func(t QueueTask) string { return t.Priority }),
		listfilter.Equals[QueueTask](f.Provider, func(t QueueTask) string { return t.Provider }),
		listfilter.Equals[QueueTask](f.Portfolio, func(t QueueTask) string { return t.Portfolio }),
		listfilter.Equals[QueueTask](f.Program, func(t QueueTask) string { return t.Program }),
		listfilter.Equals[QueueTask](f.Queue, func(t QueueTask) string { return t.Queue }),
		listfilter.Equals[QueueTask](f.Disposition, func(t QueueTask) string { return t.Disposition }),
		listfilter.Equals[QueueTask](f.Insurance, func(t QueueTask) string { return t.Insurance }),
		listfilter.Equals[QueueTask](f.InsuranceType, func(t QueueTask) string { return t.InsuranceType }),
	}
	if !actor.IsElevated() {
		username := actor.Username
		preds = append(preds, func(t QueueTask) bool { return t.AssignedTo == username })
	}

	return listfilter.Apply(tasks, preds...), nil
}

// Summarize recomputes the per-status counts for a filtered view.
func (s *Service) Summarize(tasks []QueueTask) Summary {
	counts := listfilter.CountBy(tasks, func(t QueueTask) string { return t.Status })
	return Summary{
		Pending:    counts[StatusPending],
		InProgress: counts[StatusInProgress],
		Completed:  counts[StatusCompleted],
		OnHold:     counts[StatusOnHold],
	}
}

func (s *Service) Get(ctx context.Context, id string) (QueueTask, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves a task to any status in the vocabulary. Only the
// target record changes.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (QueueTask, error) {
	if !validStatuses[status] {
		return QueueTask{}, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// AppendNote timestamps and appends a note. Blank text is silently
// ignored and the task is returned unchanged.
func (s *Service) AppendNote(ctx context.Context, id, text string) (QueueTask, error) {
	if strings.TrimSpace(text) == "" {
		return s.repo.GetByID(ctx, id)
	}
	note := fmt.Sprintf("%s: %s", time.Now().Format("1/2/2006, 3:04:05 PM"), text)
	return s.repo.AppendNote(ctx, id, note)
}

// FilterOptions computes the dropdown values from the whole collection,
// not the filtered view, so narrowing one filter never empties another.
func (s *Service) FilterOptions(ctx context.Context) (FilterOptions, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return FilterOptions{}, err
	}
	return FilterOptions{
		Providers:      listfilter.Distinct(tasks, func(t QueueTask) string { return t.Provider }),
		Portfolios:     listfilter.Distinct(tasks, func(t QueueTask) string { return t.Portfolio }),
		Programs:       listfilter.Distinct(tasks, func(t QueueTask) string { return t.Program }),
		Queues:         listfilter.Distinct(tasks, func(t QueueTask) string { return t.Queue }),
		Dispositions:   listfilter.Distinct(tasks, func(t QueueTask) string { return t.Disposition }),
		Insurances:     listfilter.Distinct(tasks, func(t QueueTask) string { return t.Insurance }),
		InsuranceTypes: listfilter.Distinct(tasks, func(t QueueTask) string { return t.InsuranceType }),
	}, nil
}

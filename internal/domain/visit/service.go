package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/mysage/portal/pkg/listfilter"
)

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusInProgress: true, StatusCompleted: true,
	StatusMissed: true, StatusPendingVerification: true, StatusCancelled: true,
}

// Filter holds the EV tracker's filter selections.
type Filter struct {
	Search    string
	Status    string
	Provider  string
	VisitType string
	From      *time.Time
	To        *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the visits matching the filter, in store order.
func (s *Service) List(ctx context.Context, f Filter) ([]EVVisit, error) {
	visits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(visits,
		listfilter.TextSearch[EVVisit](f.Search, func(v EVVisit) []string {
			return []string{v.PatientName, v.PatientID, v.Provider, v.VisitReason}
		}),
		listfilter.Equals[EVVisit](f.Status, func(v EVVisit) string { return v.Status }),
		listfilter.Equals[EVVisit](f.Provider, func(v EVVisit) string { return v.Provider }),
		listfilter.Equals[EVVisit](f.VisitType, func(v EVVisit) string { return v.VisitType }),
		listfilter.DateRange[EVVisit](f.From, f.To, func(v EVVisit) time.Time { return v.AppointmentDate }),
	), nil
}

// Summarize computes the schedule overview for a filtered view.
// Cancelled visits count toward the total but no named bucket.
func (s *Service) Summarize(visits []EVVisit) Summary {
	counts := listfilter.CountBy(visits, func(v EVVisit) string { return v.Status })
	total := len(visits)
	completed := counts[StatusCompleted]
	missed := counts[StatusMissed]

	return Summary{
		Total:               total,
		Completed:           completed,
		Scheduled:           counts[StatusScheduled],
		InProgress:          counts[StatusInProgress],
		Missed:              missed,
		PendingVerification: counts[StatusPendingVerification],
		CompletionRate:      listfilter.Rate(completed, total),
		MissedRate:          listfilter.Rate(missed, total),
	}
}

func (s *Service) Get(ctx context.Context, id string) (EVVisit, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves a visit to any status in the vocabulary.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (EVVisit, error) {
	if !validStatuses[status] {
		return EVVisit{}, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Providers lists the distinct providers across the whole collection.
func (s *Service) Providers(ctx context.Context) ([]string, error) {
	visits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listfilter.Distinct(visits, func(v EVVisit) string { return v.Provider }), nil
}

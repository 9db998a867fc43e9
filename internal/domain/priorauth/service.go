package priorauth

import (
	"context"
	"fmt"
	"time"

	"github.com/mysage/portal/pkg/listfilter"
)

var validStatuses = map[string]bool{
	StatusSubmitted: true, StatusPending: true, StatusUnderReview: true,
	StatusApproved: true, StatusDenied: true,
}

// Filter holds the PA tracker's filter selections.
type Filter struct {
	Search  string
	Status  string
	Payer   string
	Urgency string
	From    *time.Time
	To      *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the PA requests matching the filter, in store order.
func (s *Service) List(ctx context.Context, f Filter) ([]PARequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return listfilter.Apply(requests,
		listfilter.TextSearch[PARequest](f.Search, func(r PARequest) []string {
			return []string{r.PatientName, r.PatientID, r.AccountNumber, r.Procedure}
		}),
		listfilter.Equals[PARequest](f.Status, func(r PARequest) string { return r.Status }),
		listfilter.Equals[PARequest](f.Payer, func(r PARequest) string { return r.Payer }),
		listfilter.Equals[PARequest](f.Urgency, func(r PARequest) string { return r.Urgency }),
		listfilter.DateRange[PARequest](f.From, f.To, func(r PARequest) time.Time { return r.SubmissionDate }),
	), nil
}

// Summarize computes the approval funnel for a filtered view.
func (s *Service) Summarize(requests []PARequest) Summary {
	counts := listfilter.CountBy(requests, func(r PARequest) string { return r.Status })
	total := len(requests)
	approved := counts[StatusApproved]
	denied := counts[StatusDenied]

	return Summary{
		Total:        total,
		Approved:     approved,
		Denied:       denied,
		Pending:      counts[StatusPending] + counts[StatusUnderReview],
		Submitted:    counts[StatusSubmitted],
		ApprovalRate: listfilter.Rate(approved, total),
		DenialRate:   listfilter.Rate(denied, total),
	}
}

func (s *Service) Get(ctx context.Context, id string) (PARequest, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves a request to any status in the vocabulary.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (PARequest, error) {
	if !validStatuses[status] {
		return PARequest{}, fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Payers lists the distinct payers across the whole collection.
func (s *Service) Payers(ctx context.Context) ([]string, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listfilter.Distinct(requests, func(r PARequest) string { return r.Payer }), nil
}

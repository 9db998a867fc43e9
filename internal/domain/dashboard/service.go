package dashboard

import (
	"context"

	"github.com/mysage/portal/internal/domain/priorauth"
	"github.com/mysage/portal/internal/domain/queue"
	"github.com/mysage/portal/internal/domain/visit"
	"github.com/mysage/portal/internal/platform/auth"
	"github.com/mysage/portal/pkg/listfilter"
)

// Service assembles the landing-page overview live from the three domain
// stores, so a status change is reflected on the next dashboard load.
type Service struct {
	queue     *queue.Service
	priorauth *priorauth.Service
	visits    *visit.Service
	activity  []Activity
}

func NewService(q *queue.Service, pa *priorauth.Service, v *visit.Service) *Service {
	return &Service{
		queue:     q,
		priorauth: pa,
		visits:    v,
		activity:  SeedActivity(),
	}
}

// Overview computes the dashboard for an actor. The queue block honors
// the same role scoping as the queue screen.
func (s *Service) Overview(ctx context.Context, actor auth.Actor) (Overview, error) {
	tasks, err := s.queue.List(ctx, actor, queue.Filter{})
	if err != nil {
		return Overview{}, err
	}
	queueCounts := listfilter.CountBy(tasks, func(t queue.QueueTask) string { return t.Status })

	requests, err := s.priorauth.List(ctx, priorauth.Filter{})
	if err != nil {
		return Overview{}, err
	}
	paSummary := s.priorauth.Summarize(requests)

	visits, err := s.visits.List(ctx, visit.Filter{})
	if err != nil {
		return Overview{}, err
	}
	evSummary := s.visits.Summarize(visits)

	return Overview{
		Queue: QueueMetrics{
			Pending:    queueCounts[queue.StatusPending],
			InProgress: queueCounts[queue.StatusInProgress],
			Completed:  queueCounts[queue.StatusCompleted],
			OnHold:     queueCounts[queue.StatusOnHold],
		},
		PARequests: PAMetrics{
			Total:        paSummary.Total,
			Approved:     paSummary.Approved,
			Denied:       paSummary.Denied,
			Pending:      paSummary.Pending,
			Submitted:    paSummary.Submitted,
			ApprovalRate: paSummary.ApprovalRate,
		},
		Visits: EVMetrics{
			Scheduled:           evSummary.Scheduled,
			InProgress:          evSummary.InProgress,
			Completed:           evSummary.Completed,
			Missed:              evSummary.Missed,
			PendingVerification: evSummary.PendingVerification,
		},
		RecentActivity: s.activity,
	}, nil
}

// SeedActivity returns the demo recent-activity feed.
func SeedActivity() []Activity {
	return []Activity{
		{ID: 1, Type: "PA Approved", Patient: "John Smith", Time: "2 hours ago", Status: "success"},
		{ID: 2, Type: "Queue Updated", Task: "Insurance Verification", Time: "3 hours ago", Status: "info"},
		{ID: 3, Type: "PA Denied", Patient: "Sarah Johnson", Time: "5 hours ago", Status: "error"},
		{ID: 4, Type: "EV Completed", Patient: "Mike Davis", Time: "1 day ago", Status: "success"},
	}
}

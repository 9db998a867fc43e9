package queue

import (
	"context"
	"strings"
	"testing"

	"github.com/mysage/portal/internal/platform/auth"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(SeedTasks()))
}

var (
	staffActor = auth.Actor{Username: "staff@clinic1.com", Role: auth.RoleStaff}
	adminActor = auth.Actor{Username: "admin@clinic1.com", Role: auth.RoleAdmin}
)

func TestList_AdminSeesAllTasks(t *testing.T) {
	svc := newTestService()

	tasks, err := svc.List(context.Background(), adminActor, Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 6 {
		t.Errorf("expected 6 tasks, got %d", len(tasks))
	}
}

func TestList_StaffSeesOnlyAssignedTasks(t *testing.T) {
	svc := newTestService()

	tasks, err := svc.List(context.Background(), staffActor, Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks for staff, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.AssignedTo != staffActor.Username {
			t.Errorf("task %s assigned to %s leaked into staff view", task.ID, task.AssignedTo)
		}
	}
}

func TestList_TextSearchMatchesPatientFields(t *testing.T) {
	svc := newTestService()

	tasks, err := svc.List(context.Background(), adminActor, Filter{Search: "sarah"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "Q002" {
		t.Errorf("expected Q002 for search 'sarah', got %v", taskIDs(tasks))
	}

	tasks, _ = svc.List(context.Background(), adminActor, Filter{Search: "P12347"})
	if len(tasks) != 1 || tasks[0].ID != "Q003" {
		t.Errorf("expected Q003 for patient id search, got %v", taskIDs(tasks))
	}
}

func TestList_CombinedFilters(t *testing.T) {
	svc := newTestService()

	tasks, err := svc.List(context.Background(), adminActor, Filter{
		Status:   StatusPending,
		Priority: "High",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := taskIDs(tasks); len(got) != 2 || got[0] != "Q001" || got[1] != "Q006" {
		t.Errorf("expected [Q001 Q006], got %v", got)
	}
}

func TestList_AllSentinelPassesEverything(t *testing.T) {
	svc := newTestService()

	tasks, err := svc.List(context.Background(), adminActor, Filter{
		Status: "all", Priority: "all", Provider: "all",
		Portfolio: "all", Program: "all", Queue: "all",
		Disposition: "all", Insurance: "all", InsuranceType: "all",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 6 {
		t.Errorf("expected all 6 tasks, got %d", len(tasks))
	}
}

func TestSummarize_CountsByStatus(t *testing.T) {
	svc := newTestService()

	tasks, _ := svc.List(context.Background(), adminActor, Filter{})
	summary := svc.Summarize(tasks)

	want := Summary{Pending: 3, InProgress: 1, Completed: 1, OnHold: 1}
	if summary != want {
		t.Errorf("got %+v, want %+v", summary, want)
	}
}

func TestSummarize_FollowsFilteredView(t *testing.T) {
	svc := newTestService()

	tasks, _ := svc.List(context.Background(), staffActor, Filter{})
	summary := svc.Summarize(tasks)

	want := Summary{Pending: 1, InProgress: 1, Completed: 1, OnHold: 1}
	if summary != want {
		t.Errorf("got %+v, want %+v", summary, want)
	}
}

func TestUpdateStatus_TaskLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	task, err := svc.UpdateStatus(ctx, "Q001", StatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != StatusInProgress {
		t.Errorf("expected In Progress, got %s", task.Status)
	}

	task, err = svc.UpdateStatus(ctx, "Q001", StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != StatusCompleted {
		t.Errorf("expected Completed, got %s", task.Status)
	}
}

func TestUpdateStatus_OnlyTargetChanges(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, _ := svc.List(ctx, adminActor, Filter{})
	if _, err := svc.UpdateStatus(ctx, "Q001", StatusOnHold); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _ := svc.List(ctx, adminActor, Filter{})

	for i := range before {
		if before[i].ID == "Q001" {
			if after[i].Status != StatusOnHold {
				t.Errorf("Q001 status not updated")
			}
			continue
		}
		if after[i].Status != before[i].Status {
			t.Errorf("task %s status changed from %s to %s", before[i].ID, before[i].Status, after[i].Status)
		}
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService()

	if _, err := svc.UpdateStatus(context.Background(), "Q001", "Archived"); err == nil {
		t.Fatal("expected error for status outside the vocabulary")
	}
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	svc := newTestService()

	if _, err := svc.UpdateStatus(context.Background(), "Q999", StatusCompleted); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAppendNote_TimestampsNote(t *testing.T) {
	svc := newTestService()

	task, err := svc.AppendNote(context.Background(), "Q003", "left voicemail for patient")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(task.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(task.Notes))
	}
	if !strings.HasSuffix(task.Notes[0], ": left voicemail for patient") {
		t.Errorf("note missing timestamp prefix: %q", task.Notes[0])
	}
}

func TestAppendNote_BlankTextIsNoop(t *testing.T) {
	svc := newTestService()

	task, err := svc.AppendNote(context.Background(), "Q001", "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(task.Notes) != 2 {
		t.Errorf("expected notes unchanged, got %d", len(task.Notes))
	}
}

func TestFilterOptions_SortedDistinctValues(t *testing.T) {
	svc := newTestService()

	opts, err := svc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantProviders := []string{"Dr. Brown", "Dr. Davis", "Dr. Johnson", "Dr. Smith", "Dr. Wilson"}
	if len(opts.Providers) != len(wantProviders) {
		t.Fatalf("expected %d providers, got %v", len(wantProviders), opts.Providers)
	}
	for i, p := range wantProviders {
		if opts.Providers[i] != p {
			t.Errorf("providers[%d] = %q, want %q", i, opts.Providers[i], p)
		}
	}
	if len(opts.Portfolios) != 2 || opts.Portfolios[0] != "ChiroHD" || opts.Portfolios[1] != "ChiroOne" {
		t.Errorf("unexpected portfolios: %v", opts.Portfolios)
	}
}

func taskIDs(tasks []QueueTask) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

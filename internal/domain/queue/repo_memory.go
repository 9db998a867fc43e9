package queue

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps tasks in insertion order behind a RWMutex.
// Reads return copies so callers can never mutate the store through a
// returned slice.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []QueueTask
}

func NewMemoryRepository(tasks []QueueTask) *MemoryRepository {
	copied := make([]QueueTask, len(tasks))
	copy(copied, tasks)
	return &MemoryRepository{tasks: copied}
}

func (r *MemoryRepository) List(ctx context.Context) ([]QueueTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]QueueTask, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = copyTask(t)
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (QueueTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return copyTask(t), nil
		}
	}
	return QueueTask{}, ErrNotFound
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id, status string) (QueueTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Status = status
			return copyTask(r.tasks[i]), nil
		}
	}
	return QueueTask{}, ErrNotFound
}

func (r *MemoryRepository) AppendNote(ctx context.Context, id, note string) (QueueTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Notes = append(r.tasks[i].Notes, note)
			return copyTask(r.tasks[i]), nil
		}
	}
	return QueueTask{}, ErrNotFound
}

func copyTask(t QueueTask) QueueTask {
	notes := make([]string, len(t.Notes))
	copy(notes, t.Notes)
	t.Notes = notes
	return t
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedTasks returns the demo task fixtures the portal ships with.
func SeedTasks() []QueueTask {
	return []QueueTask{
		{
			ID:            "Q001",
			TaskType:      "Insurance Verification",
			PatientName:   "John Smith",
			PatientID:     "P12345",
			Priority:      "High",
			Status:        StatusPending,
			AssignedTo:    "staff@clinic1.com",
			DueDate:       day("2024-01-15"),
			CreatedDate:   day("2024-01-10"),
			Description:   "Verify insurance coverage for upcoming procedure",
			Notes:         []string{"Patient called to confirm insurance details", "Waiting for insurance company response"},
			EstimatedTime: 30,
			Provider:      "Dr. Johnson",
			Portfolio:     "ChiroHD",
			Program:       "Authorization",
			Queue:         "Audit Required",
			Disposition:   "Pending response from Insurance",
			Insurance:     "Blue Cross Blue Shield",
			InsuranceType: "Primary",
		},
		{
			ID:            "Q002",
			TaskType:      "Prior Authorization",
			PatientName:   "Sarah Johnson",
			PatientID:     "P12346",
			Priority:      "High",
			Status:        StatusInProgress,
			AssignedTo:    "staff@clinic1.com",
			DueDate:       day("2024-01-14"),
			CreatedDate:   day("2024-01-08"),
			Description:   "Submit PA for MRI scan - lower back pain",
			Notes:         []string{"Initial submission completed", "Awaiting additional documentation from physician"},
			EstimatedTime: 45,
			Provider:      "Dr. Smith",
			Portfolio:     "ChiroOne",
			Program:       "Verification",
			Queue:         "Authorization",
			Disposition:   "EV Received",
			Insurance:     "Aetna",
			InsuranceType: "Primary",
		},
		{
			ID:            "Q003",
			TaskType:      "Claims Processing",
			PatientName:   "Mike Davis",
			PatientID:     "P12347",
			Priority:      "Medium",
			Status:        StatusPending,
			AssignedTo:    "admin@clinic1.com",
			DueDate:       day("2024-01-16"),
			CreatedDate:   day("2024-01-11"),
			Description:   "Process claim for office visit and lab work",
			Notes:         []string{},
			EstimatedTime: 20,
			Provider:      "Dr. Wilson",
			Portfolio:     "ChiroHD",
			Program:       "Personal Injury",
			Queue:         "Audit Required",
			Disposition:   "Pending response from Insurance",
			Insurance:     "United Healthcare",
			InsuranceType: "Secondary",
		},
		{
			ID:            "Q004",
			TaskType:      "Patient Follow-up",
			PatientName:   "Emily Wilson",
			PatientID:     "P12348",
			Priority:      "Low",
			Status:        StatusCompleted,
			AssignedTo:    "staff@clinic1.com",
			DueDate:       day("2024-01-12"),
			CreatedDate:   day("2024-01-09"),
			Description:   "Follow up on test results and schedule next appointment",
			Notes:         []string{"Patient contacted successfully", "Next appointment scheduled for 2024-01-20"},
			EstimatedTime: 15,
			Provider:      "Dr. Brown",
			Portfolio:     "ChiroOne",
			Program:       "Billing Programs",
			Queue:         "Authorization",
			Disposition:   "EV Received",
			Insurance:     "Cigna",
			InsuranceType: "Primary",
		},
		{
			ID:            "Q005",
			TaskType:      "Eligibility Check",
			PatientName:   "Robert Brown",
			PatientID:     "P12349",
			Priority:      "Medium",
			Status:        StatusOnHold,
			AssignedTo:    "staff@clinic1.com",
			DueDate:       day("2024-01-17"),
			CreatedDate:   day("2024-01-12"),
			Description:   "Check eligibility for new patient registration",
			Notes:         []string{"Waiting for patient to provide additional documentation"},
			EstimatedTime: 25,
			Provider:      "Dr. Davis",
			Portfolio:     "ChiroHD",
			Program:       "Authorization",
			Queue:         "Audit Required",
			Disposition:   "Pending response from Insurance",
			Insurance:     "Humana",
			InsuranceType: "Primary",
		},
		{
			ID:            "Q006",
			TaskType:      "Payment Processing",
			PatientName:   "Lisa Anderson",
			PatientID:     "P12350",
			Priority:      "High",
			Status:        StatusPending,
			AssignedTo:    "admin@clinic1.com",
			DueDate:       day("2024-01-15"),
			CreatedDate:   day("2024-01-13"),
			Description:   "Process payment for outstanding balance",
			Notes:         []string{"Patient payment plan needs to be set up"},
			EstimatedTime: 35,
			Provider:      "Dr. Johnson",
			Portfolio:     "ChiroOne",
			Program:       "Billing Programs",
			Queue:         "Authorization",
			Disposition:   "EV Received",
			Insurance:     "Medicare",
			InsuranceType: "Primary",
		},
	}
}

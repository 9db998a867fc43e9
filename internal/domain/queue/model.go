package queue

import "time"

// QueueTask is a unit of back-office work tied to a patient: an
// insurance verification, a prior authorization, a claim, and so on.
type QueueTask struct {
	ID            string    `json:"id"`
	TaskType      string    `json:"taskType"`
	PatientName   string    `json:"patientName"`
	PatientID     string    `json:"patientId"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	AssignedTo    string    `json:"assignedTo"`
	DueDate       time.Time `json:"dueDate"`
	CreatedDate   time.Time `json:"createdDate"`
	Description   string    `json:"description"`
	Notes         []string  `json:"notes"`
	EstimatedTime int       `json:"estimatedTime"` // minutes
	Provider      string    `json:"provider"`
	Portfolio     string    `json:"portfolio"`
	Program       string    `json:"program"`
	Queue         string    `json:"queue"`
	Disposition   string    `json:"disposition"`
	Insurance     string    `json:"insurance"`
	InsuranceType string    `json:"insuranceType"`
}

// Task statuses.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// Summary is the per-status count block shown above the task list,
// computed over the filtered view.
type Summary struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	OnHold     int `json:"onHold"`
}

// FilterOptions lists the distinct values available for each dropdown,
// computed over the unfiltered collection.
type FilterOptions struct {
	Providers      []string `json:"providers"`
	Portfolios     []string `json:"portfolios"`
	Programs       []string `json:"programs"`
	Queues         []string `json:"queues"`
	Dispositions   []string `json:"dispositions"`
	Insurances     []string `json:"insurances"`
	InsuranceTypes []string `json:"insuranceTypes"`
}

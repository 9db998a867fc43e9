package dashboard

// QueueMetrics summarizes the task queue for the landing page.
type QueueMetrics struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	OnHold     int `json:"onHold"`
}

// PAMetrics summarizes prior-authorization activity.
type PAMetrics struct {
	Total        int `json:"total"`
	Approved     int `json:"approved"`
	Denied       int `json:"denied"`
	Pending      int `json:"pending"`
	Submitted    int `json:"submitted"`
	ApprovalRate int `json:"approvalRate"`
}

// EVMetrics summarizes the visit schedule.
type EVMetrics struct {
	Scheduled           int `json:"scheduled"`
	InProgress          int `json:"inProgress"`
	Completed           int `json:"completed"`
	Missed              int `json:"missed"`
	PendingVerification int `json:"pendingVerification"`
}

// Activity is one entry in the recent-activity feed.
type Activity struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Patient string `json:"patient,omitempty"`
	Task    string `json:"task,omitempty"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// Overview is the full dashboard payload.
type Overview struct {
	Queue          QueueMetrics `json:"queue"`
	PARequests     PAMetrics    `json:"paRequests"`
	Visits         EVMetrics    `json:"visits"`
	RecentActivity []Activity   `json:"recentActivity"`
}

package priorauth

import "time"

// PARequest tracks a prior-authorization submission through the payer's
// review cycle.
type PARequest struct {
	ID             string     `json:"id"`
	PatientName    string     `json:"patientName"`
	PatientID      string     `json:"patientId"`
	AccountNumber  string     `json:"accountNumber"`
	RequestType    string     `json:"requestType"`
	Procedure      string     `json:"procedure"`
	Payer          string     `json:"payer"`
	Status         string     `json:"status"`
	SubmissionDate time.Time  `json:"submissionDate"`
	ResponseDate   *time.Time `json:"responseDate,omitempty"`
	DenialReason   string     `json:"denialReason,omitempty"`
	RequestedBy    string     `json:"requestedBy"`
	Urgency        string     `json:"urgency"`
	EstimatedCost  int        `json:"estimatedCost"`
	Notes          string     `json:"notes"`
}

// Request statuses.
const (
	StatusSubmitted   = "Submitted"
	StatusPending     = "Pending"
	StatusUnderReview = "Under Review"
	StatusApproved    = "Approved"
	StatusDenied      = "Denied"
)

// Urgency levels.
const (
	UrgencyRoutine = "Routine"
	UrgencyUrgent  = "Urgent"
	UrgencySTAT    = "STAT"
)

// Summary is the approval funnel over the filtered view. Pending folds in
// Under Review because both are open from the clinic's perspective.
type Summary struct {
	Total        int `json:"total"`
	Approved     int `json:"approved"`
	Denied       int `json:"denied"`
	Pending      int `json:"pending"`
	Submitted    int `json:"submitted"`
	ApprovalRate int `json:"approvalRate"`
	DenialRate   int `json:"denialRate"`
}

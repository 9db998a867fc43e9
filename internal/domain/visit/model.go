package visit

import "time"

// Vitals captures the measurements recorded during a visit. All fields
// are optional; phone consultations record none.
type Vitals struct {
	BloodPressure string  `json:"bloodPressure,omitempty"`
	HeartRate     int     `json:"heartRate,omitempty"`
	Temperature   float64 `json:"temperature,omitempty"`
	Weight        int     `json:"weight,omitempty"`
	Height        int     `json:"height,omitempty"`
}

// EVVisit is an electronic-visit record covering scheduling, clinical
// documentation, and front-desk billing state.
type EVVisit struct {
	ID                string     `json:"id"`
	PatientName       string     `json:"patientName"`
	PatientID         string     `json:"patientId"`
	VisitType         string     `json:"visitType"`
	AppointmentDate   time.Time  `json:"appointmentDate"`
	AppointmentTime   string     `json:"appointmentTime"`
	Duration          int        `json:"duration"` // minutes
	Provider          string     `json:"provider"`
	Status            string     `json:"status"`
	VisitReason       string     `json:"visitReason"`
	Notes             string     `json:"notes"`
	Vitals            *Vitals    `json:"vitals,omitempty"`
	Diagnosis         []string   `json:"diagnosis,omitempty"`
	Prescriptions     []string   `json:"prescriptions,omitempty"`
	FollowUpRequired  bool       `json:"followUpRequired"`
	FollowUpDate      *time.Time `json:"followUpDate,omitempty"`
	InsuranceVerified bool       `json:"insuranceVerified"`
	CopayCollected    bool       `json:"copayCollected"`
	CopayAmount       int        `json:"copayAmount,omitempty"`
}

// Visit statuses.
const (
	StatusScheduled           = "Scheduled"
	StatusInProgress          = "In Progress"
	StatusCompleted           = "Completed"
	StatusMissed              = "Missed"
	StatusPendingVerification = "Pending Verification"
	StatusCancelled           = "Cancelled"
)

// Visit types.
const (
	TypeTelehealth   = "Telehealth"
	TypeInPerson     = "In-Person"
	TypePhone        = "Phone Consultation"
	TypeFollowUp     = "Follow-up"
)

// Summary is the schedule overview over the filtered view.
type Summary struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Scheduled           int `json:"scheduled"`
	InProgress          int `json:"inProgress"`
	Missed              int `json:"missed"`
	PendingVerification int `json:"pendingVerification"`
	CompletionRate      int `json:"completionRate"`
	MissedRate          int `json:"missedRate"`
}

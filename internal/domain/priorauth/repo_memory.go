package priorauth

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps PA requests in insertion order behind a RWMutex.
type MemoryRepository struct {
	mu       sync.RWMutex
	requests []PARequest
}

func NewMemoryRepository(requests []PARequest) *MemoryRepository {
	copied := make([]PARequest, len(requests))
	copy(copied, requests)
	return &MemoryRepository{requests: copied}
}

func (r *MemoryRepository) List(ctx context.Context) ([]PARequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PARequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (PARequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return PARequest{}, ErrNotFound
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id, status string) (PARequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			return r.requests[i], nil
		}
	}
	return PARequest{}, ErrNotFound
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// SeedRequests returns the demo PA request fixtures.
func SeedRequests() []PARequest {
	return []PARequest{
		{
			ID:             "PA001",
			PatientName:    "John Smith",
			PatientID:      "P12345",
			AccountNumber:  "ACC001234",
			RequestType:    "Diagnostic Imaging",
			Procedure:      "MRI - Lower Back",
			Payer:          "Blue Cross Blue Shield",
			Status:         StatusApproved,
			SubmissionDate: day("2024-01-08"),
			ResponseDate:   dayPtr("2024-01-10"),
			RequestedBy:    "Dr. Johnson",
			Urgency:        UrgencyRoutine,
			EstimatedCost:  2500,
			Notes:          "Patient experiencing chronic lower back pain for 6 months",
		},
		{
			ID:             "PA002",
			PatientName:    "Sarah Johnson",
			PatientID:      "P12346",
			AccountNumber:  "ACC001235",
			RequestType:    "Specialist Referral",
			Procedure:      "Cardiology Consultation",
			Payer:          "Aetna",
			Status:         StatusDenied,
			SubmissionDate: day("2024-01-09"),
			ResponseDate:   dayPtr("2024-01-12"),
			DenialReason:   "Insufficient medical necessity documentation. Please provide additional clinical notes and test results.",
			RequestedBy:    "Dr. Smith",
			Urgency:        UrgencyUrgent,
			EstimatedCost:  450,
			Notes:          "Patient has family history of heart disease, experiencing chest pain",
		},
		{
			ID:             "PA003",
			PatientName:    "Mike Davis",
			PatientID:      "P12347",
			AccountNumber:  "ACC001236",
			RequestType:    "Surgical Procedure",
			Procedure:      "Arthroscopic Knee Surgery",
			Payer:          "United Healthcare",
			Status:         StatusPending,
			SubmissionDate: day("2024-01-11"),
			RequestedBy:    "Dr. Wilson",
			Urgency:        UrgencyRoutine,
			EstimatedCost:  8500,
			Notes:          "Failed conservative treatment, MRI shows meniscal tear",
		},
		{
			ID:             "PA004",
			PatientName:    "Emily Wilson",
			PatientID:      "P12348",
			AccountNumber:  "ACC001237",
			RequestType:    "Medication",
			Procedure:      "Specialty Medication - Humira",
			Payer:          "Cigna",
			Status:         StatusUnderReview,
			SubmissionDate: day("2024-01-12"),
			RequestedBy:    "Dr. Brown",
			Urgency:        UrgencyUrgent,
			EstimatedCost:  5200,
			Notes:          "Patient has rheumatoid arthritis, failed methotrexate therapy",
		},
		{
			ID:             "PA005",
			PatientName:    "Robert Brown",
			PatientID:      "P12349",
			AccountNumber:  "ACC001238",
			RequestType:    "Diagnostic Testing",
			Procedure:      "CT Scan - Chest",
			Payer:          "Medicare",
			Status:         StatusApproved,
			SubmissionDate: day("2024-01-10"),
			ResponseDate:   dayPtr("2024-01-11"),
			RequestedBy:    "Dr. Davis",
			Urgency:        UrgencySTAT,
			EstimatedCost:  1200,
			Notes:          "Suspected pulmonary embolism, patient in ER",
		},
		{
			ID:             "PA006",
			PatientName:    "Lisa Anderson",
			PatientID:      "P12350",
			AccountNumber:  "ACC001239",
			RequestType:    "Physical Therapy",
			Procedure:      "PT - Post-surgical rehabilitation",
			Payer:          "Humana",
			Status:         StatusSubmitted,
			SubmissionDate: day("2024-01-13"),
			RequestedBy:    "Dr. Johnson",
			Urgency:        UrgencyRoutine,
			EstimatedCost:  1800,
			Notes:          "Post-operative care following shoulder surgery",
		},
		{
			ID:             "PA007",
			PatientName:    "David Miller",
			PatientID:      "P12351",
			AccountNumber:  "ACC001240",
			RequestType:    "Diagnostic Imaging",
			Procedure:      "PET Scan - Oncology",
			Payer:          "Blue Cross Blue Shield",
			Status:         StatusDenied,
			SubmissionDate: day("2024-01-07"),
			ResponseDate:   dayPtr("2024-01-09"),
			DenialReason:   "Alternative imaging modalities not attempted. Please try CT scan first and provide results.",
			RequestedBy:    "Dr. Thompson",
			Urgency:        UrgencyUrgent,
			EstimatedCost:  4500,
			Notes:          "Cancer staging evaluation, patient diagnosed with lung cancer",
		},
	}
}

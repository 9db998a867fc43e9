package visit

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps visits in insertion order behind a RWMutex.
type MemoryRepository struct {
	mu     sync.RWMutex
	visits []EVVisit
}

func NewMemoryRepository(visits []EVVisit) *MemoryRepository {
	copied := make([]EVVisit, len(visits))
	copy(copied, visits)
	return &MemoryRepository{visits: copied}
}

func (r *MemoryRepository) List(ctx context.Context) ([]EVVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]EVVisit, len(r.visits))
	for i, v := range r.visits {
		out[i] = copyVisit(v)
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (EVVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.visits {
		if v.ID == id {
			return copyVisit(v), nil
		}
	}
	return EVVisit{}, ErrNotFound
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id, status string) (EVVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.visits {
		if r.visits[i].ID == id {
			r.visits[i].Status = status
			return copyVisit(r.visits[i]), nil
		}
	}
	return EVVisit{}, ErrNotFound
}

func copyVisit(v EVVisit) EVVisit {
	if v.Vitals != nil {
		vitals := *v.Vitals
		v.Vitals = &vitals
	}
	if v.Diagnosis != nil {
		diagnosis := make([]string, len(v.Diagnosis))
		copy(diagnosis, v.Diagnosis)
		v.Diagnosis = diagnosis
	}
	if v.Prescriptions != nil {
		prescriptions := make([]string, len(v.Prescriptions))
		copy(prescriptions, v.Prescriptions)
		v.Prescriptions = prescriptions
	}
	return v
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

// SeedVisits returns the demo visit fixtures.
func SeedVisits() []EVVisit {
	return []EVVisit{
		{
			ID:              "EV001",
			PatientName:     "John Smith",
			PatientID:       "P12345",
			VisitType:       TypeTelehealth,
			AppointmentDate: day("2024-01-15"),
			AppointmentTime: "09:00",
			Duration:        30,
			Provider:        "Dr. Johnson",
			Status:          StatusCompleted,
			VisitReason:     "Annual Physical Exam",
			Notes:           "Patient reports feeling well. No acute concerns. Discussed preventive care measures.",
			Vitals: &Vitals{
				BloodPressure: "120/80",
				HeartRate:     72,
				Temperature:   98.6,
				Weight:        180,
				Height:        70,
			},
			Diagnosis:         []string{"Z00.00 - Encounter for general adult medical examination without abnormal findings"},
			Prescriptions:     []string{"Multivitamin daily"},
			FollowUpRequired:  true,
			FollowUpDate:      dayPtr("2024-07-15"),
			InsuranceVerified: true,
			CopayCollected:    true,
			CopayAmount:       25,
		},
		{
			ID:              "EV002",
			PatientName:     "Sarah Johnson",
			PatientID:       "P12346",
			VisitType:       TypeInPerson,
			AppointmentDate: day("2024-01-15"),
			AppointmentTime: "10:30",
			Duration:        45,
			Provider:        "Dr. Smith",
			Status:          StatusInProgress,
			VisitReason:     "Chest Pain Evaluation",
			Notes:           "Patient experiencing intermittent chest pain for 2 weeks. EKG ordered.",
			Vitals: &Vitals{
				BloodPressure: "140/90",
				HeartRate:     88,
				Temperature:   99.1,
			},
			Diagnosis:         []string{},
			Prescriptions:     []string{},
			InsuranceVerified: true,
			CopayAmount:       40,
		},
		{
			ID:                "EV003",
			PatientName:       "Mike Davis",
			PatientID:         "P12347",
			VisitType:         TypePhone,
			AppointmentDate:   day("2024-01-15"),
			AppointmentTime:   "14:00",
			Duration:          15,
			Provider:          "Dr. Wilson",
			Status:            StatusScheduled,
			VisitReason:       "Medication Review",
			InsuranceVerified: true,
			CopayAmount:       15,
		},
		{
			ID:                "EV004",
			PatientName:       "Emily Wilson",
			PatientID:         "P12348",
			VisitType:         TypeTelehealth,
			AppointmentDate:   day("2024-01-14"),
			AppointmentTime:   "11:00",
			Duration:          30,
			Provider:          "Dr. Brown",
			Status:            StatusMissed,
			VisitReason:       "Diabetes Follow-up",
			Notes:             "Patient did not join telehealth session. Attempted to contact via phone.",
			FollowUpRequired:  true,
			InsuranceVerified: true,
			CopayAmount:       30,
		},
		{
			ID:              "EV005",
			PatientName:     "Robert Brown",
			PatientID:       "P12349",
			VisitType:       TypeInPerson,
			AppointmentDate: day("2024-01-14"),
			AppointmentTime: "15:30",
			Duration:        60,
			Provider:        "Dr. Davis",
			Status:          StatusPendingVerification,
			VisitReason:     "Post-operative Check",
			Notes:           "Patient recovering well from knee surgery. Wound healing appropriately.",
			Vitals: &Vitals{
				BloodPressure: "118/76",
				HeartRate:     68,
				Temperature:   98.4,
			},
			Diagnosis:         []string{"Z48.89 - Encounter for other specified surgical aftercare"},
			Prescriptions:     []string{"Ibuprofen 600mg TID", "Physical therapy referral"},
			FollowUpRequired:  true,
			FollowUpDate:      dayPtr("2024-02-14"),
			InsuranceVerified: true,
			CopayCollected:    true,
			CopayAmount:       35,
		},
		{
			ID:                "EV006",
			PatientName:       "Lisa Anderson",
			PatientID:         "P12350",
			VisitType:         TypeFollowUp,
			AppointmentDate:   day("2024-01-16"),
			AppointmentTime:   "08:30",
			Duration:          20,
			Provider:          "Dr. Johnson",
			Status:            StatusScheduled,
			VisitReason:       "Blood Pressure Check",
			InsuranceVerified: true,
			CopayAmount:       20,
		},
		{
			ID:              "EV007",
			PatientName:     "David Miller",
			PatientID:       "P12351",
			VisitType:       TypeTelehealth,
			AppointmentDate: day("2024-01-13"),
			AppointmentTime: "16:00",
			Duration:        25,
			Provider:        "Dr. Thompson",
			Status:          StatusCancelled,
			VisitReason:     "Mental Health Consultation",
			Notes:           "Patient cancelled due to scheduling conflict. Rescheduled for next week.",
		},
	}
}

package report

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when no report has the requested id.
var ErrNotFound = errors.New("report not found")

// Store keeps generated reports newest-first. New runs are inserted at
// the head so the most recent generation is always listed first.
type Store struct {
	mu      sync.RWMutex
	reports []GeneratedReport
}

func NewStore(reports []GeneratedReport) *Store {
	copied := make([]GeneratedReport, len(reports))
	copy(copied, reports)
	return &Store{reports: copied}
}

func (s *Store) List() []GeneratedReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GeneratedReport, len(s.reports))
	copy(out, s.reports)
	return out
}

func (s *Store) GetByID(id string) (GeneratedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return GeneratedReport{}, ErrNotFound
}

// Insert assigns the next sequential id and prepends the report.
func (s *Store) Insert(r GeneratedReport) GeneratedReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = fmt.Sprintf("RPT%03d", len(s.reports)+1)
	s.reports = append([]GeneratedReport{r}, s.reports...)
	return r
}

// Resolve marks the identified report Ready with its artifact metadata.
// Only the matching record changes; a report finishing late can never
// touch a run that came after it.
func (s *Store) Resolve(id, size, downloadURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = StatusReady
			s.reports[i].Size = size
			s.reports[i].DownloadURL = downloadURL
			return nil
		}
	}
	return ErrNotFound
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedReports returns the demo generation history, newest first.
func SeedReports() []GeneratedReport {
	return []GeneratedReport{
		{
			ID:            "RPT001",
			Name:          "Dashboard Summary - January 2024",
			Template:      "dashboard-summary",
			GeneratedDate: ts("2024-01-15T10:30:00Z"),
			GeneratedBy:   "admin@clinic1.com",
			Status:        StatusReady,
			Format:        FormatExcel,
			Size:          "2.3 MB",
			DownloadURL:   "#",
		},
		{
			ID:            "RPT002",
			Name:          "PA Detailed Report - Q4 2023",
			Template:      "pa-detailed",
			GeneratedDate: ts("2024-01-14T15:45:00Z"),
			GeneratedBy:   "staff@clinic1.com",
			Status:        StatusReady,
			Format:        FormatPDF,
			Size:          "1.8 MB",
			DownloadURL:   "#",
		},
		{
			ID:            "RPT003",
			Name:          "EV Summary - December 2023",
			Template:      "ev-summary",
			GeneratedDate: ts("2024-01-13T09:15:00Z"),
			GeneratedBy:   "admin@clinic1.com",
			Status:        StatusGenerating,
			Format:        FormatExcel,
		},
	}
}

package report

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mysage/portal/internal/platform/auth"
	"github.com/mysage/portal/pkg/listfilter"
)

var validFormats = map[string]bool{FormatExcel: true, FormatPDF: true}

// ErrUnknownTemplate is returned when a generation names a template id
// outside the catalog.
var ErrUnknownTemplate = errors.New("unknown report template")

// Service runs the report-generation simulator. Each generation inserts
// a Generating record, then a per-run timer flips that record to Ready.
// Timers are bound to the scheduler context given at construction, so
// shutdown cannot apply a late mutation.
type Service struct {
	store     *Store
	templates []Template
	delay     time.Duration
	scheduler context.Context
	logger    zerolog.Logger
}

func NewService(scheduler context.Context, store *Store, delay time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		store:     store,
		templates: Catalog(),
		delay:     delay,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Templates returns the catalog, optionally narrowed to one category.
func (s *Service) Templates(category string) []Template {
	return listfilter.Apply(s.templates,
		listfilter.Equals[Template](category, func(t Template) string { return t.Category }),
	)
}

func (s *Service) Template(id string) (Template, error) {
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
}

// List returns the generation history, newest first.
func (s *Service) List() []GeneratedReport {
	return s.store.List()
}

func (s *Service) Get(id string) (GeneratedReport, error) {
	return s.store.GetByID(id)
}

// Generate starts a simulated generation run and returns the Generating
// record immediately. Multiple runs may be in flight; each resolves
// independently after the configured delay.
func (s *Service) Generate(actor auth.Actor, templateID, format string) (GeneratedReport, error) {
	tmpl, err := s.Template(templateID)
	if err != nil {
		return GeneratedReport{}, err
	}
	if !validFormats[format] {
		return GeneratedReport{}, fmt.Errorf("invalid format: %s", format)
	}

	now := time.Now()
	rpt := s.store.Insert(GeneratedReport{
		Name:          fmt.Sprintf("%s - %s", tmpl.Name, now.Format("Jan 2006")),
		Template:      tmpl.ID,
		GeneratedDate: now,
		GeneratedBy:   actor.Username,
		Status:        StatusGenerating,
		Format:        format,
	})

	go s.resolveAfterDelay(rpt.ID)

	return rpt, nil
}

func (s *Service) resolveAfterDelay(id string) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-s.scheduler.Done():
		s.logger.Debug().Str("report_id", id).Msg("generation abandoned on shutdown")
		return
	}

	size := fmt.Sprintf("%.1f MB", rand.Float64()*3+0.5)
	if err := s.store.Resolve(id, size, "#"); err != nil {
		s.logger.Error().Err(err).Str("report_id", id).Msg("resolving generated report")
		return
	}
	s.logger.Info().Str("report_id", id).Str("size", size).Msg("report ready")
}

package report

import "time"

// TemplateFilter describes one configurable filter on a report template.
type TemplateFilter struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"` // select, date, dateRange, text, number
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

// Template is a report definition the user can generate from.
type Template struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	Columns        []string         `json:"columns"`
	DefaultColumns []string         `json:"defaultColumns"`
	Filters        []TemplateFilter `json:"filters"`
}

// GeneratedReport is one generation run, from request to downloadable
// artifact. No real file is produced; the portal simulates the pipeline.
type GeneratedReport struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Template      string    `json:"template"`
	GeneratedDate time.Time `json:"generatedDate"`
	GeneratedBy   string    `json:"generatedBy"`
	Status        string    `json:"status"`
	Format        string    `json:"format"`
	Size          string    `json:"size,omitempty"`
	DownloadURL   string    `json:"downloadUrl,omitempty"`
}

// Generation statuses. Simulated runs always succeed, so there is no
// failed state.
const (
	StatusGenerating = "Generating"
	StatusReady      = "Ready"
)

// Output formats.
const (
	FormatExcel = "Excel"
	FormatPDF   = "PDF"
)

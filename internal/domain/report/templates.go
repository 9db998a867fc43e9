package report

// Catalog returns the built-in report templates.
func Catalog() []Template {
	return []Template{
		{
			ID:          "dashboard-summary",
			Name:        "Dashboard Summary Report",
			Description: "Comprehensive overview of all key metrics and KPIs",
			Category:    "Dashboard",
			Columns: []string{
				"Date", "Total Queue Items", "Completed Tasks", "PA Requests",
				"PA Approval Rate", "EV Visits", "EV Completion Rate", "Revenue",
			},
			DefaultColumns: []string{"Date", "Total Queue Items", "PA Requests", "EV Visits"},
			Filters: []TemplateFilter{
				{ID: "dateRange", Name: "Date Range", Type: "dateRange", Required: true},
				{ID: "clinic", Name: "Clinic", Type: "select", Options: []string{"All Clinics", "Downtown Medical", "Uptown Clinic"}},
			},
		},
		{
			ID:          "pa-detailed",
			Name:        "Prior Authorization Detailed Report",
			Description: "Detailed breakdown of all PA requests with outcomes and timelines",
			Category:    "PA Tracking",
			Columns: []string{
				"PA ID", "Patient Name", "Patient ID", "Account Number", "Procedure",
				"Payer", "Status", "Submission Date", "Response Date", "Denial Reason",
				"Provider", "Estimated Cost",
			},
			DefaultColumns: []string{"PA ID", "Patient Name", "Procedure", "Payer", "Status", "Submission Date", "Estimated Cost"},
			Filters: []TemplateFilter{
				{ID: "dateRange", Name: "Date Range", Type: "dateRange", Required: true},
				{ID: "status", Name: "Status", Type: "select", Options: []string{"All", "Submitted", "Pending", "Approved", "Denied", "Under Review"}},
				{ID: "payer", Name: "Payer", Type: "select", Options: []string{"All", "Blue Cross Blue Shield", "Aetna", "United Healthcare", "Cigna", "Medicare", "Humana"}},
			},
		},
		{
			ID:          "ev-summary",
			Name:        "Electronic Visits Summary",
			Description: "Summary of all electronic visits with completion rates and outcomes",
			Category:    "EV Tracking",
			Columns: []string{
				"Visit ID", "Patient Name", "Patient ID", "Visit Type", "Date", "Time",
				"Provider", "Status", "Duration", "Visit Reason", "Copay Amount",
				"Insurance Verified",
			},
			DefaultColumns: []string{"Visit ID", "Patient Name", "Visit Type", "Date", "Provider", "Status"},
			Filters: []TemplateFilter{
				{ID: "dateRange", Name: "Date Range", Type: "dateRange", Required: true},
				{ID: "status", Name: "Status", Type: "select", Options: []string{"All", "Scheduled", "Completed", "Missed", "Pending Verification", "Cancelled"}},
				{ID: "visitType", Name: "Visit Type", Type: "select", Options: []string{"All", "Telehealth", "In-Person", "Phone Consultation", "Follow-up"}},
			},
		},
		{
			ID:          "queue-performance",
			Name:        "Queue Performance Report",
			Description: "Analysis of task queue performance and completion metrics",
			Category:    "Queue Management",
			Columns: []string{
				"Task ID", "Task Type", "Patient Name", "Patient ID", "Priority",
				"Status", "Assigned To", "Created Date", "Due Date", "Completion Date",
				"Time to Complete",
			},
			DefaultColumns: []string{"Task ID", "Task Type", "Priority", "Status", "Assigned To", "Due Date"},
			Filters: []TemplateFilter{
				{ID: "dateRange", Name: "Date Range", Type: "dateRange", Required: true},
				{ID: "status", Name: "Status", Type: "select", Options: []string{"All", "Pending", "In Progress", "Completed", "On Hold"}},
				{ID: "priority", Name: "Priority", Type: "select", Options: []string{"All", "High", "Medium", "Low"}},
			},
		},
		{
			ID:          "financial-summary",
			Name:        "Financial Summary Report",
			Description: "Revenue analysis and financial performance metrics",
			Category:    "Financial",
			Columns: []string{
				"Date", "Total Revenue", "Copays Collected", "Outstanding Copays",
				"Insurance Payments", "PA Approvals Value", "Visit Count",
				"Average Visit Value",
			},
			DefaultColumns: []string{"Date", "Total Revenue", "Copays Collected", "Visit Count"},
			Filters: []TemplateFilter{
				{ID: "dateRange", Name: "Date Range", Type: "dateRange", Required: true},
				{ID: "paymentType", Name: "Payment Type", Type: "select", Options: []string{"All", "Copays", "Insurance", "Self-Pay"}},
			},
		},
	}
}

package reports

import "time"

// Report describes a generated report stored in blob storage
type Report struct {
	ObjectKey string
	Format    string // "pdf" or "csv"
	FromDate  string // YYYY-MM-DD
	ToDate    string // YYYY-MM-DD
	SizeBytes int64
	CreatedAt time.Time
}

// CreateReportRequest is the request to create a new report
type CreateReportRequest struct {
	From   string `json:"from"`   // YYYY-MM-DD
	To     string `json:"to"`     // YYYY-MM-DD
	Format string `json:"format"` // "pdf" or "csv"
}

// ReportDTO is the response representation of a report
type ReportDTO struct {
	ObjectKey   string    `json:"object_key"`
	Format      string    `json:"format"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	DownloadURL string    `json:"download_url"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// Constants for validation
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

package reports

import (
	"github.com/eventhub/event-management-backend/internal/attendee"
	"github.com/eventhub/event-management-backend/internal/event"
	"github.com/eventhub/event-management-backend/internal/venue"
)

const (
	// Report types
	ReportTypeAttendees = "attendees"
	ReportTypeVenues    = "venues"
	ReportTypeEvents    = "events"

	// Report format constants
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

const (
	mimeCSV   = "text/csv"
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF   = "application/pdf"
)

// ReportData carries the rows of one report; only the slice matching the
// report type is filled.
type ReportData struct {
	Attendees []attendee.Attendee `json:"attendees,omitempty"`
	Venues    []venue.Venue       `json:"venues,omitempty"`
	Events    []event.Event       `json:"events,omitempty"`
}

// table is the format independent shape every report is rendered from.
type table struct {
	title   string
	sheet   string
	headers []string
	widths  []float64 // pdf column widths in mm
	rows    [][]string
}

// ValidReportType reports whether t names a known report.
func ValidReportType(t string) bool {
	switch t {
	case ReportTypeAttendees, ReportTypeVenues, ReportTypeEvents:
		return true
	}
	return false
}

// ValidFormat reports whether f names a supported export format.
func ValidFormat(f string) bool {
	switch f {
	case FormatCSV, FormatExcel, FormatPDF:
		return true
	}
	return false
}

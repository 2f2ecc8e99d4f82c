package reports

import (
	"context"
	"time"

	"github.com/eventhub/event-management-backend/internal/apperror"
)

// ReportService loads report rows and renders them with the exporter.
type ReportService interface {
	GetReport(ctx context.Context, reportType string) (ReportData, error)
	ExportReport(ctx context.Context, reportType, format string) ([]byte, string, string, error)
}

type reportService struct {
	repo     ReportRepository
	exporter ReportExporter
}

func NewReportService(repo ReportRepository, exporter ReportExporter) ReportService {
	return &reportService{
		repo:     repo,
		exporter: exporter,
	}
}

func (s *reportService) GetReport(ctx context.Context, reportType string) (ReportData, error) {
	var (
		data ReportData
		err  error
	)
	switch reportType {
	case ReportTypeAttendees:
		data.Attendees, err = s.repo.GetAttendees(ctx)
	case ReportTypeVenues:
		data.Venues, err = s.repo.GetVenues(ctx)
	case ReportTypeEvents:
		data.Events, err = s.repo.GetEvents(ctx)
	default:
		return ReportData{}, apperror.Validation("invalid_report", "report must be attendees, venues or events")
	}
	return data, err
}

// ExportReport returns the file bytes, its filename and content type.
func (s *reportService) ExportReport(ctx context.Context, reportType, format string) ([]byte, string, string, error) {
	if !ValidFormat(format) {
		return nil, "", "", apperror.Validation("invalid_format", "format must be csv, excel or pdf")
	}
	data, err := s.GetReport(ctx, reportType)
	if err != nil {
		return nil, "", "", err
	}

	out, filename, mime, err := s.exporter.Export(reportType, format, data, time.Now().UTC())
	if err != nil {
		return nil, "", "", apperror.Internal("render report", err)
	}
	return out, filename, mime, nil
}

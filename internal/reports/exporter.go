package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter defines the interface for exporting reports in different formats
type ReportExporter interface {
	Export(reportType, format string, data ReportData, now time.Time) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

// Export renders data and names the file after the report and now.
func (e *reportExporter) Export(reportType, format string, data ReportData, now time.Time) ([]byte, string, string, error) {
	var t table
	switch reportType {
	case ReportTypeAttendees:
		t = attendeesTable(data)
	case ReportTypeVenues:
		t = venuesTable(data)
	case ReportTypeEvents:
		t = eventsTable(data)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}

	base := fmt.Sprintf("%s_report_%s", reportType, now.Format("20060102_150405"))

	switch format {
	case FormatCSV:
		out, err := e.exportCSV(t)
		return out, base + ".csv", mimeCSV, err
	case FormatExcel:
		out, err := e.exportExcel(t)
		return out, base + ".xlsx", mimeExcel, err
	case FormatPDF:
		out, err := e.exportPDF(t, now)
		return out, base + ".pdf", mimePDF, err
	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

//// ============================
/// TABLES
//// ============================

func attendeesTable(data ReportData) table {
	t := table{
		title:   "Attendees Report",
		sheet:   "Attendees",
		headers: []string{"ID", "Name", "Type", "Payment Status"},
		widths:  []float64{20, 90, 40, 40},
	}
	for _, a := range data.Attendees {
		t.rows = append(t.rows, []string{
			strconv.FormatInt(a.AttendeeID, 10),
			a.Name,
			a.Type,
			a.PaymentStatus,
		})
	}
	return t
}

func venuesTable(data ReportData) table {
	t := table{
		title:   "Venues Report",
		sheet:   "Venues",
		headers: []string{"ID", "Name", "Layout", "Capacity", "Security ID", "Design ID"},
		widths:  []float64{15, 55, 55, 20, 22, 22},
	}
	for _, v := range data.Venues {
		t.rows = append(t.rows, []string{
			strconv.FormatInt(v.VenueID, 10),
			v.VenueName,
			v.Layout,
			strconv.Itoa(v.Capacity),
			optionalID(v.SecurityID),
			optionalID(v.DesignID),
		})
	}
	return t
}

func eventsTable(data ReportData) table {
	t := table{
		title:   "Events Report",
		sheet:   "Events",
		headers: []string{"ID", "Name", "Date & Time", "Venue ID", "Venue", "Volunteer ID", "Finance ID"},
		widths:  []float64{15, 60, 40, 20, 60, 40, 40},
	}
	for _, ev := range data.Events {
		venueName := ""
		if ev.Venue != nil {
			venueName = ev.Venue.VenueName
		}
		t.rows = append(t.rows, []string{
			strconv.FormatInt(ev.EventID, 10),
			ev.EventName,
			ev.DateTime.UTC().Format("2006-01-02 15:04"),
			strconv.FormatInt(ev.VenueID, 10),
			venueName,
			optionalID(ev.VolunteerID),
			optionalID(ev.FinanceID),
		})
	}
	return t
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

//// ============================
/// FORMATS
//// ============================

func (e *reportExporter) exportCSV(t table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.headers); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(t.rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportExcel(t table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(t.sheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range t.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(t.sheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(t.headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(t.sheet, "A1", last, style); err != nil {
		return nil, err
	}

	for r, row := range t.rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(t.sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportPDF(t table, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, t.title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, "Generated "+now.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		for i, h := range t.headers {
			pdf.CellFormat(t.widths[i], 7, tr(h), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range t.rows {
		if pdf.GetY()+6 > pageHeight-bottom-10 {
			pdf.AddPage()
			header()
		}
		for i, v := range row {
			pdf.CellFormat(t.widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

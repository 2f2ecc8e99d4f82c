package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventhub/event-management-backend/internal/attendee"
	"github.com/eventhub/event-management-backend/internal/event"
	"github.com/eventhub/event-management-backend/internal/testutil"
	"github.com/eventhub/event-management-backend/internal/venue"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func seed(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.NewSQLiteDB(t, &attendee.Attendee{}, &venue.Venue{}, &event.Event{})

	security := int64(3)
	hall := venue.Venue{VenueName: "Main Hall", Layout: "rows", Capacity: 100, SecurityID: &security}
	require.NoError(t, db.Create(&hall).Error)
	require.NoError(t, db.Create(&event.Event{
		EventName: "Gala",
		DateTime:  time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		VenueID:   hall.VenueID,
	}).Error)
	require.NoError(t, db.Create(&attendee.Attendee{Name: "Ada, Countess", Type: "VIP", PaymentStatus: "Paid"}).Error)
	require.NoError(t, db.Create(&attendee.Attendee{Name: "Grace", Type: "Guest", PaymentStatus: "Pending"}).Error)
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewReportService(NewReportRepository(db), NewReportExporter()))
	r.GET("/reports/:report", h.ExportReport)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestExportAttendeesCSV(t *testing.T) {
	r := newRouter(seed(t))

	rec := get(r, "/reports/attendees?format=csv")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename=attendees_report_\d{8}_\d{6}\.csv$`, rec.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "Name", "Type", "Payment Status"}, records[0])
	assert.Equal(t, "Ada, Countess", records[1][1])
	assert.Equal(t, "Pending", records[2][3])
}

func TestExportEventsExcel(t *testing.T) {
	r := newRouter(seed(t))

	rec := get(r, "/reports/events?format=excel")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, mimeExcel, rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Events")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Gala", rows[1][1])
	assert.Equal(t, "2025-06-01 18:00", rows[1][2])
	assert.Equal(t, "Main Hall", rows[1][4])
}

func TestExportVenuesPDF(t *testing.T) {
	r := newRouter(seed(t))

	rec := get(r, "/reports/venues?format=PDF")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, mimePDF, rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestReportAsJSON(t *testing.T) {
	r := newRouter(seed(t))

	rec := get(r, "/reports/venues")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"venue_name":"Main Hall"`)
	assert.NotContains(t, rec.Body.String(), `"attendees"`)
}

func TestReportRejectsUnknownInput(t *testing.T) {
	r := newRouter(seed(t))

	rec := get(r, "/reports/sponsors?format=csv")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_report")

	rec = get(r, "/reports/attendees?format=docx")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_format")
}

func TestExporterPagesLongPDF(t *testing.T) {
	data := ReportData{}
	for i := 0; i < 200; i++ {
		data.Attendees = append(data.Attendees, attendee.Attendee{AttendeeID: int64(i + 1), Name: "Guest", Type: "Guest"})
	}

	out, name, mime, err := NewReportExporter().Export(ReportTypeAttendees, FormatPDF, data, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "attendees_report_20250102_030405.pdf", name)
	assert.Equal(t, mimePDF, mime)
	assert.NotEmpty(t, out)
}

func TestGetReportEmptyStore(t *testing.T) {
	db := testutil.NewSQLiteDB(t, &attendee.Attendee{}, &venue.Venue{}, &event.Event{})
	svc := NewReportService(NewReportRepository(db), NewReportExporter())

	out, _, _, err := svc.ExportReport(context.Background(), ReportTypeEvents, FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Date & Time,Venue ID,Venue,Volunteer ID,Finance ID\n", string(out))
}

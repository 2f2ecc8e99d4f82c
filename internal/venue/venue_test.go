package venue

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/eventhub/event-management-backend/internal/notification"
	"github.com/eventhub/event-management-backend/internal/testutil"
	"github.com/eventhub/event-management-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB, auditlog.Service) {
	t.Helper()
	db := testutil.NewSQLiteDB(t, &Venue{}, &auditlog.AuditLog{})
	audit := auditlog.NewService(auditlog.NewRepository(db))
	return NewService(NewRepository(db), audit, notification.NewService()), db, audit
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AuditMiddleware())
	h := NewHandler(svc)
	r.GET("/venues", h.ListVenues)
	r.POST("/venues", h.CreateVenue)
	return r
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateVenueCapacityBoundary(t *testing.T) {
	svc, db, audit := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateVenue(ctx, CreateVenueRequest{Name: "Closet", Capacity: 9}, auditlog.Origin{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&Venue{}).Count(&count).Error)
	assert.Zero(t, count)

	v, err := svc.CreateVenue(ctx, CreateVenueRequest{Name: "Studio", Capacity: 10}, auditlog.Origin{IP: "192.0.2.1"})
	require.NoError(t, err)
	assert.Positive(t, v.VenueID)
	assert.Equal(t, 10, v.Capacity)

	logs, err := audit.GetAuditLogs(ctx, auditlog.AuditLogFilter{Action: auditlog.ActionVenueCreated})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, auditlog.StatusSuccess, logs[0].Status)
	assert.Equal(t, "192.0.2.1", logs[0].IPAddress)
}

func TestCreateVenueOptionalReferences(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := newTestRouter(svc)

	body := `{"name":"Main Hall","layout":"Theater","capacity":500,"security_id":7}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/venues", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got Venue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Main Hall", got.VenueName)
	assert.Equal(t, "Theater", got.Layout)
	assert.Equal(t, int64Ptr(7), got.SecurityID)
	assert.Nil(t, got.DesignID)
}

func TestCreateVenueRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"capacity below minimum", `{"name":"Closet","capacity":9}`, "invalid_capacity"},
		{"negative capacity", `{"name":"Void","capacity":-1}`, "invalid_capacity"},
		{"missing capacity", `{"name":"Nowhere"}`, "invalid_capacity"},
		{"missing name", `{"capacity":50}`, "name_required"},
		{"capacity not a number", `{"name":"Hall","capacity":"big"}`, "invalid_request_body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)
			r := newTestRouter(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/venues", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestListVenuesInIDOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.CreateVenue(ctx, CreateVenueRequest{Name: name, Capacity: 20}, auditlog.Origin{})
		require.NoError(t, err)
	}

	venues, err := svc.ListVenues(ctx)

	require.NoError(t, err)
	require.Len(t, venues, 3)
	assert.Equal(t, "A", venues[0].VenueName)
	assert.Less(t, venues[0].VenueID, venues[1].VenueID)
	assert.Less(t, venues[1].VenueID, venues[2].VenueID)
}

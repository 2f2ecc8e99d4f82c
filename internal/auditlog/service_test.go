package auditlog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/eventhub/event-management-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogActionAndList(t *testing.T) {
	db := testutil.NewSQLiteDB(t, &AuditLog{})
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	id := int64(7)
	origin := Origin{IP: "10.0.0.1", RequestID: "req-1"}
	svc.LogAction(ctx, ActionVenueCreated, &id, map[string]interface{}{"venue_name": "Main Hall"}, origin, StatusSuccess)
	svc.LogAction(ctx, ActionEventCreated, nil, nil, origin, StatusFailure)

	all, err := svc.GetAuditLogs(ctx, AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ActionEventCreated, all[0].Action, "newest first")
	assert.Nil(t, all[0].RecordID)

	venueLogs, err := svc.GetAuditLogs(ctx, AuditLogFilter{Action: "venue_created", Status: "SUCCESS"})
	require.NoError(t, err)
	require.Len(t, venueLogs, 1)
	assert.Equal(t, int64(7), *venueLogs[0].RecordID)
	assert.Equal(t, "10.0.0.1", venueLogs[0].IPAddress)
	assert.Equal(t, "req-1", venueLogs[0].RequestID)

	var details map[string]string
	require.NoError(t, json.Unmarshal(venueLogs[0].Details, &details))
	assert.Equal(t, "Main Hall", details["venue_name"])

	got, err := svc.GetAuditLogByID(ctx, venueLogs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ActionVenueCreated, got.Action)

	missing, err := svc.GetAuditLogByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetAuditLogsRejectsUnknownStatus(t *testing.T) {
	db := testutil.NewSQLiteDB(t, &AuditLog{})
	svc := NewService(NewRepository(db))

	_, err := svc.GetAuditLogs(context.Background(), AuditLogFilter{Status: "maybe"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestGetAuditLogsCapsLimit(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	_, err := svc.GetAuditLogs(context.Background(), AuditLogFilter{Limit: 10_000})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, repo.lastFilter.Limit)

	_, err = svc.GetAuditLogs(context.Background(), AuditLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, repo.lastFilter.Limit)
}

type recordingRepo struct {
	lastFilter AuditLogFilter
}

func (r *recordingRepo) Create(context.Context, *AuditLog) error { return nil }

func (r *recordingRepo) List(_ context.Context, filter AuditLogFilter) ([]AuditLog, error) {
	r.lastFilter = filter
	return []AuditLog{}, nil
}

func (r *recordingRepo) GetByID(context.Context, uint) (*AuditLog, error) { return nil, nil }

package event

import (
	"testing"
	"time"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	gala := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-01T18:00:00Z", gala},
		{"2025-06-01T20:00:00+02:00", gala},
		{"2025-06-01T18:00:00.000Z", gala},
		{"2025-06-01T18:00:00", gala},
		{"2025-06-01 18:00:00", gala},
		{"2025-06-01T18:00", gala},
		{"2025-06-01 18:00", gala},
		{"  2025-06-01T18:00:00  ", gala},
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDateTimeFailures(t *testing.T) {
	tests := []struct {
		in       string
		wantKind apperror.Kind
	}{
		{"", apperror.KindValidation},
		{"   ", apperror.KindValidation},
		{"next friday", apperror.KindParse},
		{"2025-13-01T18:00:00", apperror.KindParse},
		{"01/06/2025 18:00", apperror.KindParse},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDateTime(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

package event

import (
	"strconv"
	"strings"
	"time"

	"github.com/eventhub/event-management-backend/internal/apperror"
)

// Layouts tried after RFC 3339. They carry no offset and are read as UTC.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime accepts RFC 3339 timestamps and a few offset-less forms
// such as "2025-06-01T18:00:00" or "2025-06-01 18:00". The result is in UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperror.Validation("date_time_required", "date_time is required")
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t.UTC(), nil
	}
	firstErr := err

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, apperror.Parse("invalid_date_time",
		"invalid date_time "+strconv.Quote(value)+": use ISO-8601, e.g. 2025-06-01T18:00:00", firstErr)
}

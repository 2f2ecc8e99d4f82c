package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("create venue: %w", Constraint("venue_conflict", "conflict", errors.New("pq")))

	assert.Equal(t, KindConstraint, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, Is(Validation("x", "y"), KindValidation))
	assert.False(t, Is(nil, KindValidation))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", Validation("name_required", "name is required"), http.StatusBadRequest, "name_required", "name is required"},
		{"parse", Parse("invalid_date_time", "bad date", errors.New("x")), http.StatusBadRequest, "invalid_date_time", "bad date"},
		{"constraint", Constraint("venue_not_found", "venue does not exist", errors.New("fk")), http.StatusUnprocessableEntity, "venue_not_found", "venue does not exist"},
		{"not found", NotFound("audit log not found"), http.StatusNotFound, "not_found", "audit log not found"},
		{"unavailable", Unavailable("store unavailable", errors.New("dial")), http.StatusServiceUnavailable, "store_unavailable", "store unavailable"},
		{"unclassified", errors.New("secret detail"), http.StatusInternalServerError, "internal_error", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.True(t, c.IsAborted())
		})
	}
}

package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/adboard-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{"client error", http.StatusNotFound, nil, "DEBUG"},
		{"elevated client error", http.StatusUnauthorized, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
		{"server error", http.StatusInternalServerError, nil, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuf, _ := logger.SetupTestLogger(t)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
			err := errors.New("query failed for password=hunter2")

			RespondWithErrorAndLog(rr, req, tt.status, "Something went wrong", err, tt.opts...)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"Something went wrong"}`, rr.Body.String())

			entries, parseErr := logBuf.GetLogEntries()
			require.NoError(t, parseErr)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
			assert.Equal(t, "/user/1", entries[0]["path"])
			assert.False(t, strings.Contains(logBuf.String(), "hunter2"))
		})
	}
}

func TestRespondNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondNoContent(rr)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

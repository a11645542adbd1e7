package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/domainerr"
)

type logEntry struct {
	level string
	msg   string
}

// recordingLogger captures the level and message of every call.
type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Info(msg string, _ ...interface{}) {
	l.entries = append(l.entries, logEntry{"INFO", msg})
}

func (l *recordingLogger) Error(msg string, _ ...interface{}) {
	l.entries = append(l.entries, logEntry{"ERROR", msg})
}

func (l *recordingLogger) Debug(msg string, _ ...interface{}) {
	l.entries = append(l.entries, logEntry{"DEBUG", msg})
}

func (l *recordingLogger) Warn(msg string, _ ...interface{}) {
	l.entries = append(l.entries, logEntry{"WARN", msg})
}

func TestRespondErrorMapsDomainErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name      string
		err       error
		status    int
		wantLevel string
	}{
		{"not found", domainerr.NewNotFound("area", "a-1"), http.StatusNotFound, "INFO"},
		{"already exists", domainerr.NewAlreadyExists("brand", "name", "Amul"), http.StatusConflict, "WARN"},
		{"invalid hierarchy", domainerr.NewInvalidHierarchy("ZONE requires nation_id"), http.StatusBadRequest, "WARN"},
		{"validation", domainerr.NewValidation("status", "unknown order status %s", "bad"), http.StatusBadRequest, "INFO"},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			log := &recordingLogger{}

			respondError(ctx, log, "test.op", tc.err)

			assert.Equal(t, tc.status, w.Code)
			require.Len(t, log.entries, 1)
			assert.Equal(t, tc.wantLevel, log.entries[0].level)
			assert.Equal(t, "test.op", log.entries[0].msg)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	respondError(ctx, &recordingLogger{}, "test.op", errors.New("pq: password authentication failed"))

	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "internal server error")
}

package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRendersPairs(t *testing.T) {
	out := format("starting server", []interface{}{"port", "8080", "schema", "tenant_a"})
	assert.Equal(t, "starting server port=8080 schema=tenant_a", out)
}

func TestFormatNoPairs(t *testing.T) {
	assert.Equal(t, "public migrations applied", format("public migrations applied", nil))
}

func TestFormatOddPairCount(t *testing.T) {
	out := format("area.update", []interface{}{"detail"})
	assert.Equal(t, "area.update detail=?", out)
}

func TestFormatNonStringValues(t *testing.T) {
	out := format("order.create", []interface{}{"error", errors.New("boom"), "attempt", 2})
	assert.Equal(t, "order.create error=boom attempt=2", out)
}

func TestWriterLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger(&out, &errOut)

	l.Info("auth.login", "email", "asha@example.com", "detail", "member not found")
	l.Error("order.create", "error", errors.New("boom"))

	assert.Contains(t, out.String(), "INFO: ")
	assert.Contains(t, out.String(), "email=asha@example.com detail=member not found")
	assert.Contains(t, errOut.String(), "ERROR: ")
	assert.Contains(t, errOut.String(), "error=boom")
}

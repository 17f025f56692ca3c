package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func readiness(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var body struct {
		Status  string         `json:"status"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	body.Details["status"] = body.Status
	return rec.Code, body.Details
}

func TestReadinessCheck(t *testing.T) {
	sessions := func() int { return 3 }

	code, details := readiness(t, NewHealthHandler(nil, sessions))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "not configured", details["db"])
	assert.Equal(t, float64(3), details["sessions"])

	code, details = readiness(t, NewHealthHandler(stubPinger{}, sessions))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", details["db"])

	code, details = readiness(t, NewHealthHandler(stubPinger{err: errors.New("connection refused")}, sessions))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", details["status"])
	assert.Equal(t, "connection refused", details["db"])
}

func TestLivenessCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(nil, nil).LivenessCheck(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexalabs/nexa-task-api/internal/api/shared"
)

func TestTrace_AddsTraceIDToContext(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, seen, shared.TraceIDLength*2)
}

func TestTrace_DistinctPerRequest(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, 2)
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, shared.GetTraceID(r.Context()))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

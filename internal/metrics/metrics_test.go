package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "error", Result(errors.New("boom")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	ExpiredBlobsDeleted.Add(0)
	RateLimitedTotal.WithLabelValues("http").Add(0)
	BlobOperations.WithLabelValues("upload", Result(nil)).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "backupkeeper_expired_blobs_deleted_total")
	assert.Contains(t, string(body), `backupkeeper_rate_limited_total{transport="http"}`)
	assert.Contains(t, string(body), `backupkeeper_blob_operations_total{operation="upload",result="ok"}`)
}

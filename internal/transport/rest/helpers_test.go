package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:generate moq -out business_service_mock_test.go -pkg rest . businessService
//go:generate moq -out link_service_mock_test.go -pkg rest . linkService
//go:generate moq -out job_service_mock_test.go -pkg rest . jobService
//go:generate moq -out application_service_mock_test.go -pkg rest . applicationService
//go:generate moq -out audit_service_mock_test.go -pkg rest . auditService

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve routes a request through the full mux so path patterns are exercised.
func serve(t *testing.T, h Handlers, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
}

func hasField(resp ErrorResponse, field string) bool {
	for _, f := range resp.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

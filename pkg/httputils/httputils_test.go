package httputils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IgorGrieder/shortlink/internal/constants"
)

func TestWriteAPIError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set(CorrelationIDHeader, "corr-123")
	rec := httptest.NewRecorder()

	WriteAPIError(rec, req, constants.ErrUnavailable)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if got := rec.Header().Get(CorrelationIDHeader); got != "corr-123" {
		t.Errorf("correlation id = %q, want echoed %q", got, "corr-123")
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != false || body["error"] != "unavailable" {
		t.Errorf("unexpected body: %v", body)
	}
	if _, ok := body["alias"]; ok {
		t.Error("alias must be omitted on errors")
	}
}

func TestGetCorrelationID_Generated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	id := GetCorrelationID(req)
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}
}

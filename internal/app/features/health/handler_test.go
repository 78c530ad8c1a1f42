package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/features/health"
	"github.com/myvedaai/Admin-Dashboard/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status   string `json:"status"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
}

func serve(t *testing.T, h *health.Handler) (int, healthBody) {
	t.Helper()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec.Code, body
}

func TestServe_MemoryBackend(t *testing.T) {
	code, body := serve(t, health.NewHandler("memory", nil, zap.NewNop()))

	if code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, code)
	}
	if body.Status != "ok" || body.Backend != "memory" || body.Database != "in-memory" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	code, body := serve(t, health.NewHandler("mongo", db.Client(), zap.NewNop()))

	if code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, code)
	}
	if body.Database != "connected" {
		t.Errorf("database: got %q, want %q", body.Database, "connected")
	}
}

func TestRoutes_GetAndHead(t *testing.T) {
	r := health.Routes(health.NewHandler("memory", nil, zap.NewNop()))
	for _, m := range []string{http.MethodGet, http.MethodHead} {
		rec := testutil.Serve(r, httptest.NewRequest(m, "/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s /: got %d, want 200", m, rec.Code)
		}
	}
}

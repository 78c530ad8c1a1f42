package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

// AdminUser returns the seeded admin as a session record.
func AdminUser() auth.SessionRecord {
	return auth.SessionRecord{ID: "1", Email: "abhi@gmail.com", Name: "Admin User", Role: models.RoleAdmin, Token: "token-admin"}
}

// ManagerUser returns the seeded manager as a session record.
func ManagerUser() auth.SessionRecord {
	return auth.SessionRecord{ID: "2", Email: "manager@example.com", Name: "Manager User", Role: models.RoleManager, Token: "token-manager"}
}

// ViewerUser returns a registered viewer as a session record.
func ViewerUser() auth.SessionRecord {
	return auth.SessionRecord{ID: "3", Email: "viewer@example.com", Name: "Viewer User", Role: models.RoleViewer, Token: "token-viewer"}
}

// WithChiURLParam adds a chi URL parameter to the request context, keeping
// any parameters already present.
// Use this in handler tests that call handler methods directly.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// JSONRequest builds a request whose body is body encoded as JSON. A nil
// body sends no payload.
func JSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// SignedInRequest is JSONRequest with user injected as the session
// principal, as LoadSessionUser does for a valid session.
func SignedInRequest(t *testing.T, user auth.SessionRecord, method, target string, body any) *http.Request {
	t.Helper()
	return auth.WithTestUser(JSONRequest(t, method, target, body), &user)
}

// Envelope mirrors the JSON envelope with a typed data payload.
type Envelope[T any] struct {
	Status  string          `json:"status"`
	Data    T               `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Fields  json.RawMessage `json:"fields"`
}

// Decode parses a recorded response envelope.
func Decode[T any](t *testing.T, rec *httptest.ResponseRecorder) Envelope[T] {
	t.Helper()
	var env Envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

// Serve runs req through h and returns the recorder.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

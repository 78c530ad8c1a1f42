package logout_test

import (
	"net/http"
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/features/logout"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/testutil"
)

func newTestHandler(t *testing.T) (*logout.Handler, *testutil.Deps) {
	t.Helper()
	deps := testutil.NewDeps(t)
	return logout.NewHandler(deps.Sessions, deps.Screens, deps.Audit, deps.Log), deps
}

func TestServeLogout_RedirectsToEntry(t *testing.T) {
	h, deps := newTestHandler(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			req := testutil.SignedInRequest(t, testutil.AdminUser(), method, "/logout", nil)
			rec := testutil.Serve(logout.Routes(h, deps.Sessions), req)

			if rec.Code != http.StatusSeeOther {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
			}
			if loc := rec.Header().Get("Location"); loc != "/" {
				t.Errorf("Location: got %q, want %q", loc, "/")
			}
		})
	}
}

func TestServeLogout_ClearsSessionCookie(t *testing.T) {
	h, deps := newTestHandler(t)

	req := testutil.SignedInRequest(t, testutil.AdminUser(), http.MethodGet, "/logout", nil)
	rec := testutil.Serve(logout.Routes(h, deps.Sessions), req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
			if c.MaxAge >= 0 {
				t.Errorf("session cookie MaxAge: got %d, want negative", c.MaxAge)
			}
		}
	}
	if !found {
		t.Error("expected session cookie to be cleared")
	}
}

type screenState struct{ closed bool }

func (s *screenState) Close() { s.closed = true }

func TestServeLogout_DiscardsOpenScreen(t *testing.T) {
	h, deps := newTestHandler(t)
	user := testutil.AdminUser()

	st, err := screens.Open(deps.Screens, user.Token, "organizations", func() (*screenState, error) {
		return &screenState{}, nil
	})
	if err != nil {
		t.Fatalf("open screen: %v", err)
	}

	req := testutil.SignedInRequest(t, user, http.MethodPost, "/logout", nil)
	testutil.Serve(logout.Routes(h, deps.Sessions), req)

	if !st.closed {
		t.Error("screen state was not closed")
	}
	if _, ok := deps.Screens.Current(user.Token); ok {
		t.Error("screen still registered after logout")
	}
}

func TestServeLogout_RequiresSession(t *testing.T) {
	h, deps := newTestHandler(t)

	rec := testutil.Serve(logout.Routes(h, deps.Sessions), testutil.JSONRequest(t, http.MethodPost, "/logout", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

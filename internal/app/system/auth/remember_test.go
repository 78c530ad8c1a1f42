package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
)

func TestRemember(t *testing.T) {
	rm := auth.NewRemember([]byte(testKey), "admin_email", "", 720*time.Hour, false)

	rec := httptest.NewRecorder()
	if err := rm.Set(rec, "abhi@gmail.com"); err != nil {
		t.Fatal(err)
	}
	if got := rm.Get(withCookies(rec, "/login")); got != "abhi@gmail.com" {
		t.Errorf("Get() = %q, want abhi@gmail.com", got)
	}

	tampered := httptest.NewRequest(http.MethodGet, "/login", nil)
	tampered.AddCookie(&http.Cookie{Name: "admin_email", Value: "abhi@gmail.com"})
	if got := rm.Get(tampered); got != "" {
		t.Errorf("Get(unsigned) = %q, want empty", got)
	}

	clear := httptest.NewRecorder()
	rm.Clear(clear)
	cs := clear.Result().Cookies()
	if len(cs) != 1 || cs[0].MaxAge >= 0 {
		t.Errorf("Clear() cookies = %+v", cs)
	}
}

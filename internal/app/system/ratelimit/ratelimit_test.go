package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLockout_LocksOnThirdFailure(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l := NewLockout(3, 30*time.Second).WithClock(func() time.Time { return now })

	for i := 1; i <= 2; i++ {
		n, locked := l.Fail("k")
		if n != i || locked {
			t.Fatalf("Fail #%d = %d, %v", i, n, locked)
		}
	}
	if locked, _ := l.Check("k"); locked {
		t.Fatal("locked after two failures")
	}

	if n, locked := l.Fail("k"); n != 3 || !locked {
		t.Fatalf("third Fail = %d, %v, want 3, true", n, locked)
	}

	now = now.Add(10 * time.Second)
	locked, remaining := l.Check("k")
	if !locked || RemainingSeconds(remaining) != 20 {
		t.Errorf("Check() = %v, %v, want locked with 20s left", locked, remaining)
	}

	now = now.Add(21 * time.Second)
	if locked, _ := l.Check("k"); locked {
		t.Error("still locked after the duration")
	}
}

func TestLockout_FailureAfterExpiryRelocks(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	l := NewLockout(3, 30*time.Second).WithClock(func() time.Time { return now })
	for i := 0; i < 3; i++ {
		l.Fail("k")
	}
	now = now.Add(31 * time.Second)

	n, locked := l.Fail("k")
	if n != 4 || !locked {
		t.Errorf("Fail after expiry = %d, %v, want 4, true", n, locked)
	}
}

func TestLockout_SucceedResets(t *testing.T) {
	l := NewLockout(3, 30*time.Second)
	l.Fail("k")
	l.Fail("k")
	l.Succeed("k")
	if got := l.Attempts("k"); got != 0 {
		t.Errorf("Attempts() = %d, want 0", got)
	}
	if n, locked := l.Fail("k"); n != 1 || locked {
		t.Errorf("Fail after reset = %d, %v", n, locked)
	}
}

func TestLockout_KeysAreIndependent(t *testing.T) {
	l := NewLockout(1, time.Minute)
	l.Fail("a")
	if locked, _ := l.Check("b"); locked {
		t.Error("key b locked by failures on a")
	}
}

func TestRemainingSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Millisecond, 1},
		{time.Second, 1},
		{29*time.Second + 1, 30},
		{30 * time.Second, 30},
	}
	for _, tt := range tests {
		if got := RemainingSeconds(tt.d); got != tt.want {
			t.Errorf("RemainingSeconds(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"forwarded first hop", "10.0.0.1, 10.0.0.2", "", "1.1.1.1:80", "10.0.0.1"},
		{"real ip", "", " 10.0.0.9 ", "1.1.1.1:80", "10.0.0.9"},
		{"remote with port", "", "", "192.168.1.5:4000", "192.168.1.5"},
		{"remote without port", "", "", "192.168.1.5", "192.168.1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoteIP_IgnoresForwardingHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.168.1.5:4000"
	r.Header.Set("X-Forwarded-For", "10.0.0.1")
	r.Header.Set("X-Real-IP", "10.0.0.9")
	if got := RemoteIP(r); got != "192.168.1.5" {
		t.Errorf("RemoteIP() = %q, want 192.168.1.5", got)
	}
}

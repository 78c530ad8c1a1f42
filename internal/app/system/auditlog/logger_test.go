package auditlog_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memSink struct {
	events []audit.Event
	err    error
}

func (m *memSink) Log(_ context.Context, e audit.Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, e)
	return nil
}

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	req := httptest.NewRequest("GET", "/", nil)
	logger.Log(context.Background(), audit.Event{EventType: "test"})
	logger.LoginSuccess(context.Background(), req, "1", "abhi@gmail.com", "admin")
	logger.Logout(context.Background(), req)
}

func TestLogger_Modes(t *testing.T) {
	tests := []struct {
		mode     string
		wantSink int
		wantZap  int
	}{
		{auditlog.ModeAll, 1, 1},
		{auditlog.ModeDB, 1, 0},
		{auditlog.ModeLog, 0, 1},
		{auditlog.ModeOff, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			sink := &memSink{}
			l := auditlog.New(sink, zap.New(core), auditlog.Config{Auth: tt.mode, Admin: auditlog.ModeOff})

			l.LoginSuccess(context.Background(), httptest.NewRequest("POST", "/login", nil), "1", "abhi@gmail.com", "admin")
			l.InstitutionDeleted(context.Background(), httptest.NewRequest("POST", "/", nil), 3)

			if len(sink.events) != tt.wantSink {
				t.Errorf("sink got %d events, want %d", len(sink.events), tt.wantSink)
			}
			if logs.Len() != tt.wantZap {
				t.Errorf("zap got %d entries, want %d", logs.Len(), tt.wantZap)
			}
		})
	}
}

func TestLogger_FailureLogsWarnWithActor(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := &memSink{}
	l := auditlog.New(sink, zap.New(core), auditlog.Config{Auth: auditlog.ModeAll, Admin: auditlog.ModeAll})

	req := auth.WithTestUser(httptest.NewRequest("POST", "/", nil),
		&auth.SessionRecord{ID: "3", Email: "viewer@example.com", Role: "viewer"})
	l.PermissionDenied(context.Background(), req, "toggle", "aarav@school.edu")

	if logs.Len() != 1 || logs.All()[0].Level != zap.WarnLevel {
		t.Fatalf("entries = %+v", logs.All())
	}
	e := sink.events[0]
	if e.ActorEmail != "viewer@example.com" || e.Success || e.Details["action"] != "toggle" {
		t.Errorf("event = %+v", e)
	}
}

func TestLogger_NilSinkSkipsDB(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := auditlog.New(nil, zap.New(core), auditlog.Config{Auth: auditlog.ModeDB})
	l.Logout(context.Background(), httptest.NewRequest("POST", "/logout", nil))
	if logs.Len() != 0 {
		t.Errorf("unexpected zap output: %+v", logs.All())
	}
}

func TestLogger_SinkErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := auditlog.New(&memSink{err: errors.New("down")}, zap.New(core), auditlog.Config{Admin: auditlog.ModeDB})
	l.InstitutionCreated(context.Background(), httptest.NewRequest("POST", "/", nil), 10, "New", "school")
	if logs.FilterMessage("failed to store audit event").Len() != 1 {
		t.Errorf("entries = %+v", logs.All())
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range []string{"all", "db", "log", "off"} {
		if !auditlog.ValidMode(m) {
			t.Errorf("ValidMode(%q) = false", m)
		}
	}
	if auditlog.ValidMode("verbose") {
		t.Error("ValidMode(verbose) = true")
	}
}

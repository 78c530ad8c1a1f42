// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Modes for each category.
const (
	ModeAll = "all" // store + zap
	ModeDB  = "db"  // store only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// ValidMode reports whether m is a recognised mode.
func ValidMode(m string) bool {
	switch m {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Config holds audit logging configuration.
type Config struct {
	// Auth controls sign-in, registration and sign-out events.
	Auth string
	// Admin controls institution, tool and people changes.
	Admin string
}

// Sink persists audit events. *audit.Store satisfies it.
type Sink interface {
	Log(ctx context.Context, event audit.Event) error
}

// Logger provides convenience methods for logging audit events.
// It logs to the sink (when one is configured) and to zap.
type Logger struct {
	sink   Sink
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. sink may be nil, in which case "db"
// output is skipped.
func New(sink Sink, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{sink: sink, zapLog: zapLog, config: config}
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.ActorEmail != "" {
		fields = append(fields, zap.String("actor_email", event.ActorEmail))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	default:
		setting = ModeAll
	}
	if setting == "" {
		setting = ModeAll
	}
	if setting == ModeOff {
		return
	}

	if setting == ModeAll || setting == ModeLog {
		l.logToZap(event)
	}
	if (setting == ModeAll || setting == ModeDB) && l.sink != nil {
		if err := l.sink.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// event fills the request context and the acting user.
func event(r *http.Request, category, eventType string, success bool) audit.Event {
	e := audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   success,
	}
	if u, ok := auth.CurrentUser(r); ok {
		e.ActorID, e.ActorEmail, e.ActorRole = u.ID, u.Email, u.Role
	}
	return e
}

// --- Authentication Events ---

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, userID, email, role string) {
	e := event(r, audit.CategoryAuth, audit.EventLoginSuccess, true)
	e.ActorID, e.ActorEmail, e.ActorRole = userID, email, role
	l.Log(ctx, e)
}

// LoginFailed logs a rejected credential with the running attempt count.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, email string, attempts int) {
	e := event(r, audit.CategoryAuth, audit.EventLoginFailed, false)
	e.FailureReason = "invalid credentials"
	e.Details = map[string]string{"email": email, "attempts": strconv.Itoa(attempts)}
	l.Log(ctx, e)
}

// LoginLocked logs a submission refused or triggered by the lockout.
func (l *Logger) LoginLocked(ctx context.Context, r *http.Request, email string, remainingSeconds int) {
	e := event(r, audit.CategoryAuth, audit.EventLoginLocked, false)
	e.FailureReason = "locked"
	e.Details = map[string]string{"email": email, "remaining_seconds": strconv.Itoa(remainingSeconds)}
	l.Log(ctx, e)
}

// Registered logs a new account.
func (l *Logger) Registered(ctx context.Context, r *http.Request, userID, email string) {
	e := event(r, audit.CategoryAuth, audit.EventRegistered, true)
	e.ActorID, e.ActorEmail = userID, email
	l.Log(ctx, e)
}

// RegisterFailed logs a refused registration.
func (l *Logger) RegisterFailed(ctx context.Context, r *http.Request, email, reason string) {
	e := event(r, audit.CategoryAuth, audit.EventRegistered, false)
	e.FailureReason = reason
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

// PasswordResetRequested logs a forgot-password submission.
func (l *Logger) PasswordResetRequested(ctx context.Context, r *http.Request, email string) {
	e := event(r, audit.CategoryAuth, audit.EventPasswordResetAsked, true)
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

// Logout logs a user logout.
func (l *Logger) Logout(ctx context.Context, r *http.Request) {
	l.Log(ctx, event(r, audit.CategoryAuth, audit.EventLogout, true))
}

// --- Admin Events ---

// InstitutionCreated logs an added institution.
func (l *Logger) InstitutionCreated(ctx context.Context, r *http.Request, id int, name, typ string) {
	e := event(r, audit.CategoryAdmin, audit.EventInstitutionCreated, true)
	e.Details = map[string]string{"institution_id": strconv.Itoa(id), "name": name, "type": typ}
	l.Log(ctx, e)
}

// InstitutionUpdated logs a saved edit.
func (l *Logger) InstitutionUpdated(ctx context.Context, r *http.Request, id int, name string) {
	e := event(r, audit.CategoryAdmin, audit.EventInstitutionUpdated, true)
	e.Details = map[string]string{"institution_id": strconv.Itoa(id), "name": name}
	l.Log(ctx, e)
}

// InstitutionToggled logs a status change.
func (l *Logger) InstitutionToggled(ctx context.Context, r *http.Request, id int, status string) {
	e := event(r, audit.CategoryAdmin, audit.EventInstitutionToggled, true)
	e.Details = map[string]string{"institution_id": strconv.Itoa(id), "status": status}
	l.Log(ctx, e)
}

// InstitutionDeleted logs a confirmed removal.
func (l *Logger) InstitutionDeleted(ctx context.Context, r *http.Request, id int) {
	e := event(r, audit.CategoryAdmin, audit.EventInstitutionDeleted, true)
	e.Details = map[string]string{"institution_id": strconv.Itoa(id)}
	l.Log(ctx, e)
}

// Tool logs an AI tool change; eventType is one of the audit tool events.
func (l *Logger) Tool(ctx context.Context, r *http.Request, eventType string, orgID int, name, target string) {
	e := event(r, audit.CategoryAdmin, eventType, true)
	e.Details = map[string]string{"organization_id": strconv.Itoa(orgID), "tool": name, "target": target}
	l.Log(ctx, e)
}

// PersonToggled logs a student or teacher status change.
func (l *Logger) PersonToggled(ctx context.Context, r *http.Request, kind, key string, active bool) {
	e := event(r, audit.CategoryAdmin, audit.EventPersonToggled, true)
	e.Details = map[string]string{"kind": kind, "key": key, "active": strconv.FormatBool(active)}
	l.Log(ctx, e)
}

// PersonRenamed logs a saved name edit.
func (l *Logger) PersonRenamed(ctx context.Context, r *http.Request, kind, key, name string) {
	e := event(r, audit.CategoryAdmin, audit.EventPersonRenamed, true)
	e.Details = map[string]string{"kind": kind, "key": key, "name": name}
	l.Log(ctx, e)
}

// PermissionDenied logs a refused people-record edit.
func (l *Logger) PermissionDenied(ctx context.Context, r *http.Request, action, key string) {
	e := event(r, audit.CategoryAdmin, audit.EventPermissionDenied, false)
	e.FailureReason = "role not permitted"
	e.Details = map[string]string{"action": action, "key": key}
	l.Log(ctx, e)
}

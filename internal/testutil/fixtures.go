package testutil

import (
	"testing"
	"time"

	uierrors "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/memstore"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/seed"
	userstore "github.com/myvedaai/Admin-Dashboard/internal/app/store/users"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/ratelimit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionKey signs test session cookies.
const SessionKey = "test-session-key-for-testing-only-0123456789"

// Deps is a seeded memory backend plus the shared services handlers use.
// The concrete memstores are exposed so tests can inspect state directly.
type Deps struct {
	Log *zap.Logger

	Institutions *memstore.Store[int, models.Institution]
	Schools      *memstore.Store[int, models.SchoolData]
	Students     *memstore.Store[string, models.Student]
	Teachers     *memstore.Store[int, models.Teacher]
	UserRepo     *memstore.Store[string, models.User]
	Users        *userstore.Store

	Screens  *screens.Registry
	Sessions *auth.SessionManager
	Remember *auth.Remember
	Lockout  *ratelimit.Lockout
	Audit    *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewDeps builds Deps from the seed data. Passwords are hashed at the
// minimum bcrypt cost to keep tests fast.
func NewDeps(t *testing.T) *Deps {
	t.Helper()
	logger := zap.NewNop()

	users, err := seed.Users(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	sm, err := auth.NewSessionManager(SessionKey, "test-session", "", time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	userRepo := memstore.New(func(u models.User) string { return u.ID }, users)
	return &Deps{
		Log: logger,

		Institutions: memstore.New(func(i models.Institution) int { return i.ID }, seed.Institutions()),
		Schools:      memstore.New(func(s models.SchoolData) int { return s.ID }, seed.Schools()).WithClone(models.SchoolData.Clone),
		Students:     memstore.New(func(s models.Student) string { return s.Email }, seed.Students()),
		Teachers:     memstore.New(func(tc models.Teacher) int { return tc.ID }, seed.Teachers()),
		UserRepo:     userRepo,
		Users:        userstore.New(userRepo, bcrypt.MinCost),

		Screens:  screens.New(),
		Sessions: sm,
		Remember: auth.NewRemember([]byte(SessionKey), "admin_email", "", 24*time.Hour, false),
		Lockout:  ratelimit.NewLockout(3, 30*time.Second),
		Audit:    auditlog.New(nil, logger, auditlog.Config{Auth: auditlog.ModeLog, Admin: auditlog.ModeLog}),
		ErrLog:   uierrors.NewErrorLogger(logger),
	}
}

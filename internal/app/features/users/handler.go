// internal/app/features/users/handler.go
package users

import (
	"time"

	uierrors "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// Options tunes the screen's timing.
type Options struct {
	// LoadDelay is the fixed wait before the rosters are shown.
	LoadDelay time.Duration
	// Debounce is the quiet period before a typed search is applied.
	Debounce time.Duration
}

// Handler serves the students and teachers screen of an organization.
type Handler struct {
	Students repository.Repository[string, models.Student]
	Teachers repository.Repository[int, models.Teacher]
	Screens  *screens.Registry
	AuditLog *auditlog.Logger
	Opts     Options
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(
	students repository.Repository[string, models.Student],
	teachers repository.Repository[int, models.Teacher],
	reg *screens.Registry,
	audit *auditlog.Logger,
	opts Options,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Students: students,
		Teachers: teachers,
		Screens:  reg,
		AuditLog: audit,
		Opts:     opts,
		ErrLog:   errLog,
		Log:      logger,
	}
}

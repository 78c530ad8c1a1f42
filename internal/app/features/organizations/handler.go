// internal/app/features/organizations/handler.go
package organizations

import (
	"time"

	uierrors "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the organizations screen.
type Handler struct {
	Institutions repository.Repository[int, models.Institution]
	Screens      *screens.Registry
	AuditLog     *auditlog.Logger
	Debounce     time.Duration
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger
}

// NewHandler constructs the organizations handler. debounce is the quiet
// period before a typed search is applied.
func NewHandler(
	institutions repository.Repository[int, models.Institution],
	reg *screens.Registry,
	audit *auditlog.Logger,
	debounce time.Duration,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Institutions: institutions,
		Screens:      reg,
		AuditLog:     audit,
		Debounce:     debounce,
		ErrLog:       errLog,
		Log:          logger,
	}
}

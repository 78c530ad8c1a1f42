// internal/app/features/orgdetail/handler.go
package orgdetail

import (
	uierrors "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the organization detail screen and its AI tool board.
type Handler struct {
	Institutions repository.Repository[int, models.Institution]
	Schools      repository.Repository[int, models.SchoolData]
	Screens      *screens.Registry
	AuditLog     *auditlog.Logger
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger
}

func NewHandler(
	institutions repository.Repository[int, models.Institution],
	schools repository.Repository[int, models.SchoolData],
	reg *screens.Registry,
	audit *auditlog.Logger,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Institutions: institutions,
		Schools:      schools,
		Screens:      reg,
		AuditLog:     audit,
		ErrLog:       errLog,
		Log:          logger,
	}
}

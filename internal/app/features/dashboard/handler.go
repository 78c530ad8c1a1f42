// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"

	uierrors "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// ActivitySource lists the newest audit events of a category.
type ActivitySource interface {
	Recent(ctx context.Context, category string, limit int64) ([]audit.Event, error)
}

type Handler struct {
	Institutions repository.Repository[int, models.Institution]
	Students     repository.Repository[string, models.Student]
	Teachers     repository.Repository[int, models.Teacher]
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger

	// Activity is nil when audit events are not persisted.
	Activity ActivitySource
}

func NewHandler(
	institutions repository.Repository[int, models.Institution],
	students repository.Repository[string, models.Student],
	teachers repository.Repository[int, models.Teacher],
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Institutions: institutions,
		Students:     students,
		Teachers:     teachers,
		ErrLog:       errLog,
		Log:          logger,
	}
}

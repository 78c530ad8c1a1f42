// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Screens    *screens.Registry
	AuditLog   *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, reg *screens.Registry, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Screens:    reg,
		AuditLog:   audit,
	}
}

// ServeLogout handles GET and POST /logout. The open screen is discarded
// along with the session and the browser is sent back to the entry screen.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok && h.Screens != nil {
		h.Screens.Close(u.Token)
	}
	h.AuditLog.Logout(r.Context(), r)
	h.SessionMgr.SignOut(w, r)

	http.Redirect(w, r, auth.EntryPath, http.StatusSeeOther)
}

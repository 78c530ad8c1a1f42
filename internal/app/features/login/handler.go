// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/myvedaai/Admin-Dashboard/internal/app/features/errors"
	userstore "github.com/myvedaai/Admin-Dashboard/internal/app/store/users"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auditlog"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/ratelimit"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// Delays are the fixed waits applied before credentials are checked.
type Delays struct {
	Login    time.Duration
	Register time.Duration
}

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Remember   *auth.Remember
	Lockout    *ratelimit.Lockout
	AuditLog   *auditlog.Logger
	ErrLog     *uierrors.ErrorLogger
	Delays     Delays
	Log        *zap.Logger

	now func() time.Time
}

func NewHandler(
	users *userstore.Store,
	sessionMgr *auth.SessionManager,
	remember *auth.Remember,
	lockout *ratelimit.Lockout,
	audit *auditlog.Logger,
	delays Delays,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		Remember:   remember,
		Lockout:    lockout,
		AuditLog:   audit,
		ErrLog:     errLog,
		Delays:     delays,
		Log:        logger,
		now:        time.Now,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| View models                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// formView is the state of the sign-in form.
type formView struct {
	Email            string `json:"email"`
	Remember         bool   `json:"remember"`
	Locked           bool   `json:"locked"`
	RemainingSeconds int    `json:"remainingSeconds,omitempty"`
	Attempts         int    `json:"attempts"`
	MaxAttempts      int    `json:"maxAttempts"`
}

// userView is the signed-in principal returned after login or registration.
type userView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	DisplayRole string     `json:"displayRole"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
}

type signedInView struct {
	User     userView `json:"user"`
	Redirect string   `json:"redirect"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// lockoutKey identifies the sign-in form: the session's screen token when
// the browser has one, otherwise the connection's address. Forwarding
// headers are only honored through the trust_proxy setting.
func (h *Handler) lockoutKey(r *http.Request) string {
	if tok, ok := h.SessionMgr.PeekToken(r); ok {
		return "token:" + tok
	}
	return "ip:" + ratelimit.RemoteIP(r)
}

// signIn stores the session record for u and returns the response body.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, u models.User) (signedInView, error) {
	rec, err := h.SessionMgr.SignIn(w, r, auth.SessionRecord{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		LastLogin: u.LastLogin,
	})
	if err != nil {
		return signedInView{}, err
	}
	return signedInView{
		User: userView{
			ID:          rec.ID,
			Email:       rec.Email,
			Name:        rec.Name,
			Role:        rec.Role,
			DisplayRole: rec.DisplayRole(),
			LastLogin:   rec.LastLogin,
			Avatar:      u.Avatar,
		},
		Redirect: "/dashboard",
	}, nil
}

// wait blocks for d or until ctx ends.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

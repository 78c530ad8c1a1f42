// internal/app/features/login/login.go
package login

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	userstore "github.com/myvedaai/Admin-Dashboard/internal/app/store/users"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/ratelimit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// ServeEntry handles GET /. Signed-in users go straight to the dashboard;
// everyone else gets the sign-in form.
func (h *Handler) ServeEntry(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.ServeLogin(w, r)
}

// ServeLogin handles GET /login. It issues the form's screen token and
// prefills the remembered email.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, err := h.SessionMgr.Token(w, r); err != nil {
		h.Log.Warn("issue screen token failed", zap.Error(err))
	}
	email := h.Remember.Get(r)
	view := formView{
		Email:       email,
		Remember:    email != "",
		Attempts:    h.Lockout.Attempts(h.lockoutKey(r)),
		MaxAttempts: h.Lockout.Limit(),
	}
	if locked, remaining := h.Lockout.Check(h.lockoutKey(r)); locked {
		view.Locked = true
		view.RemainingSeconds = ratelimit.RemainingSeconds(remaining)
	}
	apiresp.OK(w, r, view)
}

// HandleLoginPost handles POST /login.
//
// A locked form is rejected before anything else. Otherwise the handler
// waits the login delay and checks the credentials; each failure counts
// toward the lockout and a success clears the count.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode login request failed", err, "Invalid request body.")
		return
	}
	email := strings.TrimSpace(req.Email)
	key := h.lockoutKey(r)

	if locked, remaining := h.Lockout.Check(key); locked {
		secs := ratelimit.RemainingSeconds(remaining)
		h.AuditLog.LoginLocked(r.Context(), r, email, secs)
		apiresp.Fail(w, r, http.StatusLocked,
			fmt.Sprintf("Account temporarily locked. Try again in %d seconds.", secs))
		return
	}

	if err := wait(r.Context(), h.Delays.Login); err != nil {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login")
	defer cancel()

	u, err := h.Users.Authenticate(ctx, email, req.Password)
	if errors.Is(err, userstore.ErrInvalidCredentials) {
		count, locked := h.Lockout.Fail(key)
		h.AuditLog.LoginFailed(ctx, r, email, count)
		if locked {
			apiresp.Fail(w, r, http.StatusLocked,
				fmt.Sprintf("Too many failed attempts. Account locked for %d seconds.",
					ratelimit.RemainingSeconds(h.Lockout.Duration())))
			return
		}
		apiresp.Fail(w, r, http.StatusUnauthorized,
			fmt.Sprintf("Invalid credentials. Attempts: %d/%d", count, h.Lockout.Limit()))
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "authenticate failed", err, "A database error occurred.")
		return
	}

	if touched, err := h.Users.Touch(ctx, u.ID, h.now()); err != nil {
		h.Log.Warn("record last login failed", zap.String("user_id", u.ID), zap.Error(err))
	} else {
		u = touched
	}

	view, err := h.signIn(w, r, u)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "sign in failed", err, "Unable to start a session.")
		return
	}

	if req.Remember {
		if err := h.Remember.Set(w, email); err != nil {
			h.Log.Warn("set remember cookie failed", zap.Error(err))
		}
	} else {
		h.Remember.Clear(w)
	}
	h.Lockout.Succeed(key)
	h.AuditLog.LoginSuccess(ctx, r, u.ID, u.Email, u.Role)

	apiresp.Write(w, r, http.StatusOK, apiresp.Response{
		Status:  apiresp.StatusOK,
		Data:    view,
		Message: fmt.Sprintf("Welcome back, %s!", u.Name),
	})
}

// internal/app/features/login/register.go
package login

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	userstore "github.com/myvedaai/Admin-Dashboard/internal/app/store/users"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/htmlsanitize"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
)

const (
	msgPasswordShort = "Password must be at least 8 characters long"
	msgEmailTaken    = "Email already registered"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles POST /login/register.
//
// The password length is checked before the registration delay, the
// duplicate email after it. Name and email are otherwise taken as given. A new account is a viewer and is signed in
// immediately.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode register request failed", err, "Invalid request body.")
		return
	}
	req.Name = htmlsanitize.PlainText(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if utf8.RuneCountInString(req.Password) < userstore.MinPasswordLength {
		h.AuditLog.RegisterFailed(r.Context(), r, req.Email, "password too short")
		apiresp.Fail(w, r, http.StatusBadRequest, msgPasswordShort)
		return
	}

	if err := wait(r.Context(), h.Delays.Register); err != nil {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "register")
	defer cancel()

	u, err := h.Users.Register(ctx, req.Name, req.Email, req.Password, h.now())
	if errors.Is(err, userstore.ErrEmailTaken) {
		h.AuditLog.RegisterFailed(ctx, r, req.Email, "email taken")
		apiresp.Fail(w, r, http.StatusConflict, msgEmailTaken)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "register failed", err, "A database error occurred.")
		return
	}

	view, err := h.signIn(w, r, u)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "sign in after register failed", err, "Unable to start a session.")
		return
	}
	h.AuditLog.Registered(ctx, r, u.ID, u.Email)

	apiresp.Write(w, r, http.StatusCreated, apiresp.Response{
		Status:  apiresp.StatusOK,
		Data:    view,
		Message: "Registration successful!",
	})
}

// internal/app/features/login/forgot.go
package login

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/inputval"
)

type forgotRequest struct {
	Email string `json:"email"`
}

// HandleForgot handles POST /login/forgot. The answer never reveals
// whether the address is registered. Only well-formed addresses are audited.
func (h *Handler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	var req forgotRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode forgot request failed", err, "Invalid request body.")
		return
	}
	email := strings.TrimSpace(req.Email)
	if inputval.IsValidEmail(email) {
		h.AuditLog.PasswordResetRequested(r.Context(), r, email)
	}

	apiresp.Write(w, r, http.StatusOK, apiresp.Message(
		fmt.Sprintf("If %s exists in our system, you'll receive a password reset link.", email)))
}

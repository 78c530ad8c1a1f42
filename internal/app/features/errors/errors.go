// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/authz"
)

// pageData is the body of the error endpoints.
type pageData struct {
	Title      string `json:"title"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Role       string `json:"role,omitempty"`
	UserName   string `json:"userName,omitempty"`
	Message    string `json:"message"`
	BackURL    string `json:"backUrl"`
}

// Handler is the errors feature handler.
// No store needed; it only describes the error.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden describes an "access denied" outcome.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)

	data := pageData{
		Title:      "Access denied",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    "You don't have permission to view this page.",
		BackURL:    "/dashboard",
	}
	apiresp.Write(w, r, http.StatusForbidden, apiresp.Response{
		Status: apiresp.StatusError,
		Error:  data.Message,
		Data:   data,
	})
}

// Unauthorized describes a "sign in required" outcome.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)

	data := pageData{
		Title:      "Sign in required",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    "Please sign in to continue.",
		BackURL:    "/",
	}
	apiresp.Write(w, r, http.StatusUnauthorized, apiresp.Response{
		Status: apiresp.StatusError,
		Error:  data.Message,
		Data:   data,
	})
}

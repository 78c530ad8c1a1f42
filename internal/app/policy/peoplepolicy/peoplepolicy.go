// Package peoplepolicy provides authorization policies for student and
// teacher records.
//
// Authorization rules:
//   - Admins and managers can toggle status and rename people
//   - Viewers can list and filter but not change anything
//
// Every other console mutation (institutions, AI tools) is open to any
// signed-in user.
package peoplepolicy

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/authz"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

// Denial messages shown when a people-record edit is refused.
const (
	DenyToggle = "You do not have permission to toggle user status."
	DenyEdit   = "You do not have permission to edit this user."
)

var editors = []string{models.RoleAdmin, models.RoleManager}

// CanToggle reports whether the current user may enable or disable a person.
func CanToggle(r *http.Request) bool {
	return authz.HasAnyRole(r, editors...)
}

// CanEdit reports whether the current user may rename a person.
func CanEdit(r *http.Request) bool {
	return authz.HasAnyRole(r, editors...)
}

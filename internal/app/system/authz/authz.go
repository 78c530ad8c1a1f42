// Package authz answers role questions about the signed-in console user.
// Feature policies (see policy/peoplepolicy) build on these helpers.
package authz

import (
	"net/http"
	"slices"
	"strings"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
)

// Visitor is the role reported when nobody is signed in.
const Visitor = "visitor"

func normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// UserCtx returns the user's role (lowercased), name, id, and a found flag.
// Without a session user it returns Visitor and false.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == "" {
		return Visitor, "", "", false
	}
	return normalize(user.Role), user.Name, user.ID, true
}

// HasAnyRole reports whether the signed-in user holds one of roles.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	return slices.ContainsFunc(roles, func(want string) bool { return normalize(want) == role })
}

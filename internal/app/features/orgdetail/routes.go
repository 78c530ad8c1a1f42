// internal/app/features/orgdetail/routes.go
package orgdetail

import (
	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
)

// Routes is mounted at "/organizations/{id}/detail".
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeDetail)
		pr.Post("/tools", h.HandleAdd)
		pr.Post("/tools/remove", h.HandleRemove)
		pr.Post("/tools/toggle", h.HandleToggle)
	})
	return r
}

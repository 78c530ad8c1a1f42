// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
)

// Routes mounts the users screen under "/organizations/{id}/users".
// Viewers may browse; the people policy gates toggle and rename.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeUsers)
		pr.Post("/retry", h.HandleRetry)
		pr.Post("/tab", h.HandleTab)
		pr.Post("/search", h.HandleSearch)
		pr.Post("/status", h.HandleStatus)
		pr.Post("/filters", h.HandleFilters)
		pr.Post("/sort", h.HandleSort)
		pr.Post("/page", h.HandlePage)

		pr.Post("/{key}/toggle", h.HandleToggle)
		pr.Post("/{key}/edit", h.HandleEdit)
		pr.Post("/edit/save", h.HandleEditSave)
		pr.Post("/edit/cancel", h.HandleEditCancel)
	})

	return r
}

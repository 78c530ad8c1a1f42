// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
)

// Routes mounts the organizations screen under the base path (typically
// "/organizations" from bootstrap). Every signed-in role may change
// institutions.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/tab", h.HandleTab)
		pr.Post("/search", h.HandleSearch)
		pr.Post("/status", h.HandleStatus)
		pr.Post("/sort", h.HandleSort)
		pr.Post("/page", h.HandlePage)

		pr.Post("/new", h.HandleCreate)
		pr.Post("/new/open", h.HandleNewOpen)
		pr.Post("/new/cancel", h.HandleNewCancel)

		pr.Post("/{id}/toggle", h.HandleToggle)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/edit/save", h.HandleEditSave)
		pr.Post("/edit/cancel", h.HandleEditCancel)

		pr.Post("/{id}/remove", h.HandleRemove)
		pr.Post("/remove/confirm", h.HandleRemoveConfirm)
		pr.Post("/remove/cancel", h.HandleRemoveCancel)
	})

	return r
}

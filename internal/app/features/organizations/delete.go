// internal/app/features/organizations/delete.go
package organizations

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
)

// HandleRemove asks for confirmation before an institution is deleted.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiresp.Fail(w, r, http.StatusBadRequest, "Invalid organization id.")
		return
	}
	s := h.open(r)
	ctx, cancel := h.pageCtx(r, "organizations remove")
	defer cancel()

	if _, err := s.list.RequestRemove(ctx, id); err != nil {
		h.fail(w, r, "request remove", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleRemoveConfirm deletes the institution awaiting confirmation.
func (h *Handler) HandleRemoveConfirm(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	ctx, cancel := h.pageCtx(r, "organizations delete")
	defer cancel()

	id, removed, err := s.list.ConfirmRemove(ctx)
	if err != nil {
		h.fail(w, r, "delete organization", err)
		return
	}
	msg := ""
	if removed {
		h.AuditLog.InstitutionDeleted(ctx, r, id)
		msg = "Organization removed."
	}
	h.render(w, r, s, http.StatusOK, msg)
}

// HandleRemoveCancel closes the confirmation step.
func (h *Handler) HandleRemoveCancel(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	s.list.CancelRemove()
	h.render(w, r, s, http.StatusOK, "")
}

// internal/app/features/organizations/manage.go
package organizations

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/inputval"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// HandleToggle flips an institution between enabled and disabled. An
// unknown id leaves everything unchanged.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiresp.Fail(w, r, http.StatusBadRequest, "Invalid organization id.")
		return
	}
	s := h.open(r)
	ctx, cancel := h.pageCtx(r, "organizations toggle")
	defer cancel()

	inst, found, err := s.list.Toggle(ctx, id, flipStatus)
	if err != nil {
		h.fail(w, r, "toggle organization", err)
		return
	}
	if found {
		h.AuditLog.InstitutionToggled(ctx, r, inst.ID, inst.Status)
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleEdit opens the edit form for an institution.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiresp.Fail(w, r, http.StatusBadRequest, "Invalid organization id.")
		return
	}
	s := h.open(r)
	ctx, cancel := h.pageCtx(r, "organizations edit")
	defer cancel()

	if _, _, err := s.list.BeginEdit(ctx, id); err != nil {
		h.fail(w, r, "begin edit", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleEditSave commits the form over the edit buffer. Fields are
// sanitized but not validated.
func (h *Handler) HandleEditSave(w http.ResponseWriter, r *http.Request) {
	var in institutionInput
	if err := apiresp.Decode(r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode edit request failed", err, "Invalid request body.")
		return
	}
	in.clean()

	s := h.open(r)
	ctx, cancel := h.pageCtx(r, "organizations save")
	defer cancel()

	saved, err := s.list.SaveEdit(ctx, func(cur models.Institution) (models.Institution, error) {
		return in.apply(cur), nil
	})
	if err != nil {
		h.fail(w, r, "save organization", err)
		return
	}
	h.AuditLog.InstitutionUpdated(ctx, r, saved.ID, saved.Name)
	h.render(w, r, s, http.StatusOK, "Organization updated.")
}

// HandleEditCancel discards the edit buffer.
func (h *Handler) HandleEditCancel(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	s.list.CancelEdit()
	h.render(w, r, s, http.StatusOK, "")
}

// HandleNewOpen opens the add form.
func (h *Handler) HandleNewOpen(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	s.list.BeginAdd()
	h.render(w, r, s, http.StatusOK, "")
}

// HandleNewCancel closes the add form.
func (h *Handler) HandleNewCancel(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	s.list.CancelAdd()
	h.render(w, r, s, http.StatusOK, "")
}

// HandleCreate adds an institution to the active tab. Its id is one past
// the current number of institutions. The name must not be blank; the
// status defaults to enabled.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in institutionInput
	if err := apiresp.Decode(r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode create request failed", err, "Invalid request body.")
		return
	}
	in.clean()
	if res := inputval.Validate(in); res.HasErrors() {
		apiresp.Invalid(w, r, res.First(), res.Errors)
		return
	}

	s := h.open(r)
	tab := tabOf(s.list.Criteria())
	ctx, cancel := h.pageCtx(r, "organizations create")
	defer cancel()

	inst, err := s.list.Add(ctx, func(count int) (models.Institution, error) {
		return in.apply(models.Institution{ID: count + 1, Type: tab, Status: models.StatusEnabled}), nil
	})
	if err != nil {
		h.fail(w, r, "create organization", err)
		return
	}
	h.Log.Info("organization created", zap.Int("id", inst.ID), zap.String("type", inst.Type))
	h.AuditLog.InstitutionCreated(ctx, r, inst.ID, inst.Name, inst.Type)
	h.render(w, r, s, http.StatusCreated, "Organization added.")
}

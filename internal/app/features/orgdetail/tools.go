// internal/app/features/orgdetail/tools.go
package orgdetail

import (
	"context"
	"net/http"
	"strings"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/aitools"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

type toolRequest struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// toolOp is one board mutation in method-expression form. changed is
// false when the tool was not on the list.
type toolOp func(b *aitools.Board, ctx context.Context, name, target string) (s models.SchoolData, changed bool, err error)

func (h *Handler) handleTool(w http.ResponseWriter, r *http.Request, eventType string, op toolOp) {
	id, ok := idParam(r)
	if !ok {
		apiresp.Fail(w, r, http.StatusNotFound, msgNoSchool)
		return
	}
	var req toolRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode tool request failed", err, "Invalid request body.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, eventType)
	defer cancel()

	b, err := h.board(ctx, r, id, false)
	if err != nil {
		h.fail(w, r, "open detail", err)
		return
	}
	s, changed, err := op(b, ctx, req.Name, req.Target)
	if err != nil {
		h.fail(w, r, eventType, err)
		return
	}
	if changed {
		h.AuditLog.Tool(ctx, r, eventType, id, req.Name, req.Target)
	}
	apiresp.OK(w, r, h.view(s, b))
}

// HandleAdd allocates a catalog tool to students or teachers.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	h.handleTool(w, r, audit.EventToolAdded, func(b *aitools.Board, ctx context.Context, name, target string) (models.SchoolData, bool, error) {
		s, err := b.Add(ctx, name, target)
		return s, err == nil, err
	})
}

// HandleRemove drops a tool from a target list.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.handleTool(w, r, audit.EventToolRemoved, (*aitools.Board).Remove)
}

// HandleToggle enables or disables a tool.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	h.handleTool(w, r, audit.EventToolToggled, (*aitools.Board).Toggle)
}

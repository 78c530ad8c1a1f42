// internal/app/features/organizations/list.go
package organizations

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listview"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/paging"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

type tabRequest struct {
	Tab string `json:"tab"`
}

type searchRequest struct {
	Q string `json:"q"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type sortRequest struct {
	Field string `json:"field"`
}

// ServeList handles GET /organizations. An optional ?page=N jumps to that
// page, clamped to the available range.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	if r.URL.Query().Has("page") {
		ctx, cancel := h.pageCtx(r, "organizations page param")
		defer cancel()
		if err := s.list.SetPage(ctx, paging.ParsePage(r)); err != nil {
			h.fail(w, r, "set page", err)
			return
		}
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleTab switches between schools and coaching centers. Search, sort,
// status and page all return to their defaults.
func (h *Handler) HandleTab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode tab request failed", err, "Invalid request body.")
		return
	}
	if !models.ValidInstitutionType(req.Tab) {
		apiresp.Fail(w, r, http.StatusBadRequest, "Unknown tab.")
		return
	}
	s := h.open(r)
	s.list.Reset(map[string]string{typeFilter: req.Tab})
	h.render(w, r, s, http.StatusOK, "")
}

// HandleSearch records the typed query. It is applied once typing pauses,
// or immediately with ?flush=1.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode search request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	s.list.Search(req.Q)
	if r.URL.Query().Get("flush") == "1" {
		s.list.FlushSearch()
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleStatus sets the status filter. The page is kept.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode status request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if err := s.list.SetStatus(req.Status); err != nil {
		h.fail(w, r, "set status", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleSort clicks a column header: a second click reverses the order.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode sort request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if err := s.list.SortBy(req.Field); err != nil {
		h.fail(w, r, "sort", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandlePage moves between pages.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	var req listview.Move
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode page request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	ctx, cancel := h.pageCtx(r, "organizations navigate")
	defer cancel()
	if err := s.list.Navigate(ctx, req); err != nil {
		h.fail(w, r, "navigate", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// internal/app/features/users/list.go
package users

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listview"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/paging"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/simload"
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

// filtersRequest sets any of the student range filters. Absent fields are
// left as they are.
type filtersRequest struct {
	Grade    *string `json:"grade"`
	Score    *string `json:"score"`
	Duration *string `json:"duration"`
}

type sortRequest struct {
	Field string `json:"field"`
}

// ServeUsers handles GET /organizations/{id}/users. The first visit waits
// out the load delay. An optional ?page=N selects a page of the active tab.
func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	if r.URL.Query().Has("page") {
		ctx, cancel := h.ctx(r, "users page param")
		defer cancel()
		if err := s.active().SetPage(ctx, paging.ParsePage(r)); err != nil {
			h.fail(w, r, "set page", err)
			return
		}
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleRetry re-runs the load.
func (h *Handler) HandleRetry(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	snap := s.loader.Retry(r.Context())
	if snap.State != simload.Ready {
		h.writeLoad(w, r, s, snap)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleTab switches between students and teachers. The new tab starts
// from the default criteria: no search or filters, sorted by name.
func (h *Handler) HandleTab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode tab request failed", err, "Invalid request body.")
		return
	}
	tab, ok := normalizeTab(req.Tab)
	if !ok {
		apiresp.Fail(w, r, http.StatusBadRequest, "Unknown tab.")
		return
	}
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	s.switchTab(tab)
	h.render(w, r, s, http.StatusOK, "")
}

// HandleSearch records the typed query; ?flush=1 applies it at once.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode search request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	l := s.active()
	l.Search(req.Q)
	if r.URL.Query().Get("flush") == "1" {
		l.FlushSearch()
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleStatus sets the status filter and returns to page 1.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode status request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	ctx, cancel := h.ctx(r, "users status")
	defer cancel()

	l := s.active()
	if err := l.SetStatus(req.Status); err != nil {
		h.fail(w, r, "set status", err)
		return
	}
	if err := l.SetPage(ctx, 1); err != nil {
		h.fail(w, r, "set status", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleFilters sets the grade, score and duration bands and returns to
// page 1. Teachers have no range filters.
func (h *Handler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode filters request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	ctx, cancel := h.ctx(r, "users filters")
	defer cancel()

	l := s.active()
	for _, f := range []struct {
		name string
		band *string
	}{
		{filterGrade, req.Grade},
		{filterScore, req.Score},
		{filterDuration, req.Duration},
	} {
		if f.band == nil {
			continue
		}
		if err := l.SetRange(f.name, *f.band); err != nil {
			h.fail(w, r, "set filter", err)
			return
		}
	}
	if err := l.SetPage(ctx, 1); err != nil {
		h.fail(w, r, "set filter", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleSort selects the sort field. Each field has a fixed direction.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode sort request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	if err := s.active().SelectSort(req.Field); err != nil {
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
	if !h.ready(w, r, s) {
		return
	}
	ctx, cancel := h.ctx(r, "users navigate")
	defer cancel()
	if err := s.active().Navigate(ctx, req); err != nil {
		h.fail(w, r, "navigate", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

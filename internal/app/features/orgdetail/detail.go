// internal/app/features/orgdetail/detail.go
package orgdetail

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/seed"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/aitools"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

const msgNoSchool = "School data is not available."

type detailView struct {
	School          models.SchoolData           `json:"school"`
	Available       []string                    `json:"available"`
	Activity        []models.RecentToolActivity `json:"activity"`
	TopRequirements []seed.Requirement          `json:"topRequirements"`
	StudentActivity []seed.WeeklyActivity       `json:"studentActivity"`
	TeacherActivity []seed.WeeklyActivity       `json:"teacherActivity"`
}

func screenName(id int) string { return fmt.Sprintf("detail:%d", id) }

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// ensureSchool makes sure a detail aggregate exists for id. An institution
// without one gets the sample aggregate under its own name and address.
func (h *Handler) ensureSchool(ctx context.Context, id int) error {
	_, err := h.Schools.GetByID(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	inst, err := h.Institutions.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return aitools.ErrNoSchool
	}
	if err != nil {
		return err
	}
	if err := h.Schools.Insert(ctx, seed.SchoolFor(inst)); err != nil && !errors.Is(err, repository.ErrDuplicateID) {
		return fmt.Errorf("create detail for %d: %w", id, err)
	}
	h.Log.Debug("detail aggregate created", zap.Int("id", id))
	return nil
}

// board returns the caller's tool board for id. fresh discards any board
// already open so the activity log starts empty.
func (h *Handler) board(ctx context.Context, r *http.Request, id int, fresh bool) (*aitools.Board, error) {
	u, _ := auth.CurrentUser(r)
	if fresh {
		h.Screens.Close(u.Token)
	}
	return screens.Open(h.Screens, u.Token, screenName(id), func() (*aitools.Board, error) {
		if err := h.ensureSchool(ctx, id); err != nil {
			return nil, err
		}
		return aitools.NewBoard(h.Schools, id), nil
	})
}

func (h *Handler) view(s models.SchoolData, b *aitools.Board) detailView {
	return detailView{
		School:          s,
		Available:       aitools.Available(s),
		Activity:        b.Activity(),
		TopRequirements: seed.TopRequirements(),
		StudentActivity: seed.StudentActivity(),
		TeacherActivity: seed.TeacherActivity(),
	}
}

// ServeDetail handles GET /organizations/{id}/detail. Opening the screen
// starts a new activity log.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiresp.Fail(w, r, http.StatusNotFound, msgNoSchool)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "organization detail")
	defer cancel()

	b, err := h.board(ctx, r, id, true)
	if err != nil {
		h.fail(w, r, "open detail", err)
		return
	}
	s, err := b.School(ctx)
	if err != nil {
		h.fail(w, r, "load detail", err)
		return
	}
	apiresp.OK(w, r, h.view(s, b))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, aitools.ErrNoSchool):
		h.ErrLog.LogNotFound(w, r, op+": no school data", msgNoSchool)
	case errors.Is(err, aitools.ErrNoSelection):
		apiresp.Fail(w, r, http.StatusBadRequest, "Please select a tool to add.")
	case errors.Is(err, aitools.ErrUnknownTool):
		apiresp.Fail(w, r, http.StatusBadRequest, "Unknown tool.")
	case errors.Is(err, aitools.ErrInvalidTarget):
		apiresp.Fail(w, r, http.StatusBadRequest, "Target must be Students or Teachers.")
	case errors.Is(err, aitools.ErrToolExists):
		apiresp.Fail(w, r, http.StatusConflict, "Tool already exists.")
	default:
		h.ErrLog.LogServerError(w, r, op+" failed", err, "A database error occurred.")
	}
}

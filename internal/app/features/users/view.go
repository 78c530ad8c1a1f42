// internal/app/features/users/view.go
package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/policy/peoplepolicy"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listview"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/simload"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

// scoreBar is one bar of the mental-health histogram.
type scoreBar struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

// gradeAverage is the mean session duration of one grade, in minutes.
type gradeAverage struct {
	Grade   int     `json:"grade"`
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

var scoreBars = []scoreBar{
	{Label: "0-35%", Min: 0, Max: 35},
	{Label: "36-70%", Min: 36, Max: 70},
	{Label: "71-100%", Min: 71, Max: 100},
}

var chartGrades = []int{7, 8, 9, 10}

// scoreHistogram counts the students in each score range.
func scoreHistogram(students []models.Student) []scoreBar {
	out := append([]scoreBar(nil), scoreBars...)
	for _, s := range students {
		for i := range out {
			if v := s.MentalHealth.Score; v >= out[i].Min && v <= out[i].Max {
				out[i].Count++
			}
		}
	}
	return out
}

// sessionAverages averages the recorded session durations per grade.
// Students without a recorded duration are left out; a grade with none
// averages 0.
func sessionAverages(students []models.Student) []gradeAverage {
	out := make([]gradeAverage, len(chartGrades))
	for i, g := range chartGrades {
		sum, n := 0, 0
		for _, s := range students {
			if s.Grade == g && s.SessionDuration != nil {
				sum += *s.SessionDuration
				n++
			}
		}
		out[i] = gradeAverage{Grade: g, Label: fmt.Sprintf("Grade %d", g)}
		if n > 0 {
			out[i].Average = float64(sum) / float64(n)
		}
	}
	return out
}

type usersView struct {
	Load     simload.Snapshot[rosterCounts]           `json:"load"`
	Counts   rosterCounts                             `json:"counts"`
	Tab      string                                   `json:"tab"`
	CanEdit  bool                                     `json:"canEdit"`
	Students *listview.Result[string, models.Student] `json:"students,omitempty"`
	Teachers *listview.Result[int, models.Teacher]    `json:"teachers,omitempty"`

	Histogram       []scoreBar     `json:"histogram"`
	SessionAverages []gradeAverage `json:"sessionAverages"`
}

func (h *Handler) ctx(r *http.Request, op string) (context.Context, context.CancelFunc) {
	return timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, op)
}

// load runs the simulated load once per screen. A failed load stays failed
// until retried.
func (h *Handler) load(ctx context.Context, s *screen) simload.Snapshot[rosterCounts] {
	snap := s.loader.Snapshot()
	if snap.State == simload.Idle {
		snap = s.loader.Load(ctx)
	}
	return snap
}

// ready reports whether the rosters are shown; otherwise it writes the
// load state.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request, s *screen) bool {
	snap := h.load(r.Context(), s)
	if snap.State == simload.Ready {
		return true
	}
	h.writeLoad(w, r, s, snap)
	return false
}

// writeLoad reports a screen whose rosters are not shown: 202 while the
// load is running, 503 once it failed.
func (h *Handler) writeLoad(w http.ResponseWriter, r *http.Request, s *screen, snap simload.Snapshot[rosterCounts]) {
	v := usersView{Load: snap, Tab: s.Tab()}
	if snap.State != simload.Failed {
		apiresp.Write(w, r, http.StatusAccepted, apiresp.Response{Status: apiresp.StatusOK, Data: v})
		return
	}
	h.Log.Warn("users load failed", zap.Error(s.loader.Err()))
	apiresp.Write(w, r, http.StatusServiceUnavailable, apiresp.Response{
		Status: apiresp.StatusError,
		Data:   v,
		Error:  simload.FailureMessage,
	})
}

// render writes the active tab with the given status and message.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, s *screen, status int, msg string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "users page")
	defer cancel()

	snap := s.loader.Snapshot()
	v := usersView{
		Load:    snap,
		Counts:  snap.Data,
		Tab:     s.Tab(),
		CanEdit: peoplepolicy.CanEdit(r),
	}

	var err error
	if v.Tab == TabTeachers {
		var res listview.Result[int, models.Teacher]
		if res, err = s.teachers.Page(ctx); err == nil {
			v.Teachers = &res
			v.Histogram = scoreHistogram(nil)
			v.SessionAverages = sessionAverages(nil)
		}
	} else {
		var res listview.Result[string, models.Student]
		if res, err = s.students.Page(ctx); err == nil {
			v.Students = &res
			v.Histogram = scoreHistogram(res.Filtered)
			v.SessionAverages = sessionAverages(res.Filtered)
		}
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load users failed", err, "A database error occurred.")
		return
	}

	apiresp.Write(w, r, status, apiresp.Response{Status: apiresp.StatusOK, Data: v, Message: msg})
}

// fail maps list errors onto responses.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, listview.ErrUnknownField):
		apiresp.Fail(w, r, http.StatusBadRequest, "Unknown sort field.")
	case errors.Is(err, listview.ErrInvalidFilter):
		apiresp.Fail(w, r, http.StatusBadRequest, "Invalid filter value.")
	case errors.Is(err, listview.ErrInvalidMove):
		apiresp.Fail(w, r, http.StatusBadRequest, "Invalid page request.")
	case errors.Is(err, listview.ErrNoEdit):
		apiresp.Fail(w, r, http.StatusConflict, "No user is being edited.")
	default:
		h.ErrLog.LogServerError(w, r, op+" failed", err, "A database error occurred.")
	}
}

// internal/app/features/users/screen.go
package users

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listquery"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listview"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/simload"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

// Tabs.
const (
	TabStudents = "students"
	TabTeachers = "teachers"
)

// Range filter names.
const (
	filterGrade    = "grade"
	filterScore    = "score"
	filterDuration = "duration"
)

// Person kinds recorded in the audit log.
const (
	kindStudent = "student"
	kindTeacher = "teacher"
)

// lister is the tab-independent part of a list view.
type lister interface {
	Search(q string)
	FlushSearch()
	SetStatus(status string) error
	SetRange(filter, band string) error
	SelectSort(field string) error
	SetPage(ctx context.Context, page int) error
	Navigate(ctx context.Context, m listview.Move) error
	CancelEdit()
	Reset(ranges map[string]string)
	Close()
}

// rosterCounts is what the simulated load delivers.
type rosterCounts struct {
	Students int64 `json:"students"`
	Teachers int64 `json:"teachers"`
}

// screen is the per-session state of one organization's users screen.
type screen struct {
	mu  sync.Mutex
	tab string

	loader   *simload.Loader[rosterCounts]
	students *listview.View[string, models.Student]
	teachers *listview.View[int, models.Teacher]
}

func (s *screen) Tab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// active returns the list shown on the current tab.
func (s *screen) active() lister {
	if s.Tab() == TabTeachers {
		return s.teachers
	}
	return s.students
}

// switchTab selects tab and restores its list to the defaults.
func (s *screen) switchTab(tab string) {
	s.mu.Lock()
	s.tab = tab
	s.mu.Unlock()
	s.active().Reset(nil)
}

func (s *screen) Close() {
	s.students.Close()
	s.teachers.Close()
}

func between(lo, hi int) func(int) bool {
	return func(v int) bool { return v >= lo && v <= hi }
}

func studentBand(name string, get func(models.Student) int, in func(int) bool) listquery.Band[models.Student] {
	return listquery.Band[models.Student]{Name: name, Match: func(s models.Student) bool { return in(get(s)) }}
}

func studentPipeline() *listquery.Pipeline[models.Student] {
	grade := func(s models.Student) int { return s.Grade }
	score := func(s models.Student) int { return s.MentalHealth.Score }
	duration := models.Student.Duration

	return &listquery.Pipeline[models.Student]{
		Search: []func(models.Student) string{
			func(s models.Student) string { return s.Name },
			func(s models.Student) string { return s.Email },
		},
		Enabled: func(s models.Student) bool { return s.Active },
		Ranges: map[string]listquery.RangeFilter[models.Student]{
			filterGrade: {Bands: []listquery.Band[models.Student]{
				studentBand("1-4", grade, between(1, 4)),
				studentBand("4-6", grade, between(4, 6)),
				studentBand("7-8", grade, between(7, 8)),
				studentBand("9-10", grade, between(9, 10)),
			}},
			filterScore: {Bands: []listquery.Band[models.Student]{
				studentBand("0-35", score, func(v int) bool { return v <= 35 }),
				studentBand("36-70", score, between(36, 70)),
				studentBand("71-100", score, func(v int) bool { return v >= 71 }),
			}},
			filterDuration: {Bands: []listquery.Band[models.Student]{
				studentBand("<15", duration, func(v int) bool { return v < 15 }),
				studentBand("15-30", duration, between(15, 30)),
				studentBand(">30", duration, func(v int) bool { return v > 30 }),
			}},
		},
		Fields: map[string]listquery.Field[models.Student]{
			"name":            {Compare: listquery.ByText(func(s models.Student) string { return s.Name })},
			"mentalHealth":    {Compare: listquery.ByInt(score), Initial: listquery.Desc},
			"sessionDuration": {Compare: listquery.ByInt(duration), Initial: listquery.Desc},
		},
	}
}

func teacherPipeline() *listquery.Pipeline[models.Teacher] {
	return &listquery.Pipeline[models.Teacher]{
		Search: []func(models.Teacher) string{
			func(t models.Teacher) string { return t.Name },
			func(t models.Teacher) string { return t.Email },
			func(t models.Teacher) string { return t.Phone },
		},
		Enabled: models.Teacher.Enabled,
		Fields: map[string]listquery.Field[models.Teacher]{
			"name": {Compare: listquery.ByText(func(t models.Teacher) string { return t.Name })},
		},
	}
}

var byName = listquery.Criteria{
	Status: listquery.StatusAll,
	Sort:   listquery.SortState{Field: "name", Dir: listquery.Asc},
}

func (h *Handler) newScreen() (*screen, error) {
	return &screen{
		tab: TabStudents,
		loader: simload.New(h.Opts.LoadDelay, func(ctx context.Context) (rosterCounts, error) {
			var c rosterCounts
			var err error
			if c.Students, err = h.Students.Count(ctx); err != nil {
				return c, fmt.Errorf("count students: %w", err)
			}
			if c.Teachers, err = h.Teachers.Count(ctx); err != nil {
				return c, fmt.Errorf("count teachers: %w", err)
			}
			return c, nil
		}),
		students: listview.New(listview.Config[string, models.Student]{
			Repo:     h.Students,
			Pipeline: studentPipeline(),
			Key:      func(s models.Student) string { return s.Email },
			Debounce: h.Opts.Debounce,
			Defaults: byName,
		}),
		teachers: listview.New(listview.Config[int, models.Teacher]{
			Repo:     h.Teachers,
			Pipeline: teacherPipeline(),
			Key:      func(t models.Teacher) int { return t.ID },
			Debounce: h.Opts.Debounce,
			Defaults: byName,
		}),
	}, nil
}

// open returns the caller's users screen for the organization in the URL.
// The organization only names the screen; every organization shows the
// same rosters.
func (h *Handler) open(r *http.Request) *screen {
	u, _ := auth.CurrentUser(r)
	name := "users:" + chi.URLParam(r, "id")
	s, _ := screens.Open(h.Screens, u.Token, name, h.newScreen)
	return s
}

func normalizeTab(t string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case TabStudents:
		return TabStudents, true
	case TabTeachers:
		return TabTeachers, true
	}
	return "", false
}

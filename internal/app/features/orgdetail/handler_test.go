package orgdetail_test

import (
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/features/orgdetail"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/aitools"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"github.com/myvedaai/Admin-Dashboard/internal/testutil"
)

type detailBody struct {
	School          models.SchoolData
	Available       []string
	Activity        []models.RecentToolActivity
	TopRequirements []struct{ Name string }
	StudentActivity []struct{ Day string }
	TeacherActivity []struct{ Day string }
}

type fixture struct {
	t      *testing.T
	deps   *testutil.Deps
	router chi.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	deps := testutil.NewDeps(t)
	h := orgdetail.NewHandler(deps.Institutions, deps.Schools, deps.Screens, deps.Audit, deps.ErrLog, deps.Log)
	r := chi.NewRouter()
	r.Mount("/organizations/{id}/detail", orgdetail.Routes(h, deps.Sessions))
	return &fixture{t: t, deps: deps, router: r}
}

func (f *fixture) call(method, path string, body any) (int, testutil.Envelope[detailBody]) {
	f.t.Helper()
	rec := testutil.Serve(f.router, testutil.SignedInRequest(f.t, testutil.AdminUser(), method, path, body))
	return rec.Code, testutil.Decode[detailBody](f.t, rec)
}

func tool(name, target string) map[string]string {
	return map[string]string{"name": name, "target": target}
}

func TestServeDetail_SeededSchool(t *testing.T) {
	f := newFixture(t)

	code, env := f.call(http.MethodGet, "/organizations/1/detail", nil)
	if code != http.StatusOK {
		t.Fatalf("status: got %d (%s)", code, env.Error)
	}
	d := env.Data
	if d.School.Name != "DPS Bokaro" || d.School.AiTools.Allocated != 4 {
		t.Errorf("school: got %q allocated=%d", d.School.Name, d.School.AiTools.Allocated)
	}
	if !slices.Equal(d.Available, aitools.Catalog) {
		t.Errorf("available: got %v, want full catalog", d.Available)
	}
	if len(d.Activity) != 0 {
		t.Errorf("activity: got %d entries, want none", len(d.Activity))
	}
	if len(d.TopRequirements) == 0 || len(d.StudentActivity) != 7 || len(d.TeacherActivity) != 7 {
		t.Errorf("analytics: requirements=%d student=%d teacher=%d",
			len(d.TopRequirements), len(d.StudentActivity), len(d.TeacherActivity))
	}
}

func TestServeDetail_SynthesizesFromInstitution(t *testing.T) {
	f := newFixture(t)

	_, env := f.call(http.MethodGet, "/organizations/4/detail", nil)
	s := env.Data.School
	if s.ID != 4 || s.Name != "Holy Cross School" || s.Location != "Sector 3, Bokaro, Jharkhand 827003" {
		t.Errorf("school: got id=%d name=%q location=%q", s.ID, s.Name, s.Location)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if _, err := f.deps.Schools.GetByID(ctx, 4); err != nil {
		t.Errorf("synthesized aggregate not stored: %v", err)
	}
}

func TestServeDetail_UnknownID(t *testing.T) {
	for _, path := range []string{"/organizations/99/detail", "/organizations/abc/detail"} {
		t.Run(path, func(t *testing.T) {
			f := newFixture(t)
			code, env := f.call(http.MethodGet, path, nil)
			if code != http.StatusNotFound || env.Error != "School data is not available." {
				t.Errorf("got %d %q, want 404", code, env.Error)
			}
		})
	}
}

func TestHandleAdd(t *testing.T) {
	f := newFixture(t)
	f.call(http.MethodGet, "/organizations/1/detail", nil)

	code, env := f.call(http.MethodPost, "/organizations/1/detail/tools", tool("Lesson Planner", models.TargetStudents))
	if code != http.StatusOK {
		t.Fatalf("status: got %d (%s)", code, env.Error)
	}
	d := env.Data
	if d.School.AiTools.Allocated != 5 || len(d.School.AiTools.ForStudents) != 3 {
		t.Errorf("allocation: got %d, students=%d", d.School.AiTools.Allocated, len(d.School.AiTools.ForStudents))
	}
	if slices.Contains(d.Available, "Lesson Planner") {
		t.Error("added tool still offered")
	}
	if len(d.Activity) != 1 || d.Activity[0].Action != models.ActionAdded || d.Activity[0].Target != models.TargetStudents {
		t.Fatalf("activity: got %+v", d.Activity)
	}
	if _, err := time.Parse(aitools.TimestampLayout, d.Activity[0].Timestamp); err != nil {
		t.Errorf("timestamp %q: %v", d.Activity[0].Timestamp, err)
	}
}

func TestHandleAdd_Errors(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
		code int
		msg  string
	}{
		{"no selection", tool("", models.TargetStudents), http.StatusBadRequest, "Please select a tool to add."},
		{"already allocated", tool("Exam Simulator", models.TargetTeachers), http.StatusConflict, "Tool already exists."},
		{"not in catalog", tool("Quiz Generator", models.TargetTeachers), http.StatusBadRequest, "Unknown tool."},
		{"bad target", tool("Lesson Planner", "Parents"), http.StatusBadRequest, "Target must be Students or Teachers."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.call(http.MethodPost, "/organizations/1/detail/tools", tool("Exam Simulator", models.TargetStudents))

			code, env := f.call(http.MethodPost, "/organizations/1/detail/tools", tt.body)
			if code != tt.code || env.Error != tt.msg {
				t.Errorf("got %d %q, want %d %q", code, env.Error, tt.code, tt.msg)
			}
		})
	}
}

func TestHandleToggleAndRemove(t *testing.T) {
	f := newFixture(t)

	_, env := f.call(http.MethodPost, "/organizations/1/detail/tools/toggle", tool("Quiz Generator", models.TargetStudents))
	if env.Data.School.AiTools.ForStudents[0].Enabled {
		t.Error("Quiz Generator still enabled")
	}
	if env.Data.Activity[0].Action != models.ActionDisabled {
		t.Errorf("toggle action: got %q", env.Data.Activity[0].Action)
	}

	_, env = f.call(http.MethodPost, "/organizations/1/detail/tools/remove", tool("Grade Analyzer", models.TargetTeachers))
	if env.Data.School.AiTools.Allocated != 3 || len(env.Data.School.AiTools.ForTeachers) != 1 {
		t.Errorf("after remove: allocated=%d teachers=%d", env.Data.School.AiTools.Allocated, len(env.Data.School.AiTools.ForTeachers))
	}
	if len(env.Data.Activity) != 2 || env.Data.Activity[0].Action != models.ActionRemoved {
		t.Errorf("activity: got %+v", env.Data.Activity)
	}

	// A tool not on the list changes nothing.
	code, env := f.call(http.MethodPost, "/organizations/1/detail/tools/toggle", tool("Grade Analyzer", models.TargetTeachers))
	if code != http.StatusOK || len(env.Data.Activity) != 2 {
		t.Errorf("missing tool toggle: got %d activity=%d", code, len(env.Data.Activity))
	}
}

func TestActivity_KeepsFiveMostRecent(t *testing.T) {
	f := newFixture(t)
	var env testutil.Envelope[detailBody]
	for range 7 {
		_, env = f.call(http.MethodPost, "/organizations/1/detail/tools/toggle", tool("Study Planner", models.TargetStudents))
	}
	if len(env.Data.Activity) != aitools.ActivityLimit {
		t.Fatalf("activity: got %d, want %d", len(env.Data.Activity), aitools.ActivityLimit)
	}
	if env.Data.Activity[0].Action != models.ActionDisabled {
		t.Errorf("newest action: got %q, want Disabled", env.Data.Activity[0].Action)
	}
}

func TestServeDetail_ReopenResetsActivityKeepsTools(t *testing.T) {
	f := newFixture(t)
	f.call(http.MethodGet, "/organizations/1/detail", nil)
	f.call(http.MethodPost, "/organizations/1/detail/tools", tool("Homework Assistant", models.TargetTeachers))

	_, env := f.call(http.MethodGet, "/organizations/1/detail", nil)
	if len(env.Data.Activity) != 0 {
		t.Errorf("activity after reopen: got %d entries", len(env.Data.Activity))
	}
	if env.Data.School.AiTools.Allocated != 5 {
		t.Errorf("allocated after reopen: got %d, want 5", env.Data.School.AiTools.Allocated)
	}
}

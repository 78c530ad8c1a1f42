package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/features/dashboard"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"github.com/myvedaai/Admin-Dashboard/internal/testutil"
)

type dashboardBody struct {
	User struct {
		Name        string `json:"name"`
		DisplayRole string `json:"displayRole"`
	} `json:"user"`
	Counts struct {
		Schools      int   `json:"schools"`
		Coaching     int   `json:"coaching"`
		Institutions int   `json:"institutions"`
		Students     int64 `json:"students"`
		Teachers     int64 `json:"teachers"`
	} `json:"counts"`
	UsageTrends []struct {
		Month string `json:"month"`
	} `json:"usageTrends"`
	ToolUsage  []any `json:"toolUsage"`
	OrgUsage   []any `json:"orgUsage"`
	Engagement []any `json:"engagement"`

	RecentActivity []struct {
		EventType string `json:"eventType"`
	} `json:"recentActivity"`
}

func TestServeDashboard_Unauthenticated(t *testing.T) {
	deps := testutil.NewDeps(t)
	h := dashboard.NewHandler(deps.Institutions, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)

	rec := testutil.Serve(http.HandlerFunc(h.ServeDashboard), testutil.JSONRequest(t, http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Errorf("got %d %q, want 303 /", rec.Code, rec.Header().Get("Location"))
	}
}

func TestServeDashboard_RoutesRequireSession(t *testing.T) {
	deps := testutil.NewDeps(t)
	h := dashboard.NewHandler(deps.Institutions, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)

	rec := testutil.Serve(dashboard.Routes(h, deps.Sessions), testutil.JSONRequest(t, http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestServeDashboard_CountsAndHeader(t *testing.T) {
	for _, tc := range []struct {
		name string
		role string
		want string
	}{
		{"admin", "admin", "Admin"},
		{"manager", "manager", "Manager"},
		{"viewer", "viewer", "Viewer"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			deps := testutil.NewDeps(t)
			h := dashboard.NewHandler(deps.Institutions, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)

			user := testutil.AdminUser()
			user.Role = tc.role
			rec := testutil.Serve(dashboard.Routes(h, deps.Sessions),
				testutil.SignedInRequest(t, user, http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
			}
			env := testutil.Decode[dashboardBody](t, rec)
			if env.Data.User.DisplayRole != tc.want {
				t.Errorf("display role: got %q, want %q", env.Data.User.DisplayRole, tc.want)
			}
		})
	}
}

func TestServeDashboard_LiveCounts(t *testing.T) {
	deps := testutil.NewDeps(t)
	h := dashboard.NewHandler(deps.Institutions, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := deps.Institutions.Insert(ctx, models.Institution{ID: 10, Name: "FIITJEE", Type: models.TypeCoaching, Status: models.StatusEnabled}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rec := testutil.Serve(dashboard.Routes(h, deps.Sessions),
		testutil.SignedInRequest(t, testutil.AdminUser(), http.MethodGet, "/", nil))
	env := testutil.Decode[dashboardBody](t, rec)

	c := env.Data.Counts
	if c.Schools != 7 || c.Coaching != 3 || c.Institutions != 10 || c.Students != 6 || c.Teachers != 5 {
		t.Errorf("counts: got %+v", c)
	}
	if len(env.Data.UsageTrends) != 6 || env.Data.UsageTrends[0].Month != "Oct" {
		t.Errorf("usage trends: got %+v", env.Data.UsageTrends)
	}
	if len(env.Data.ToolUsage) != 4 || len(env.Data.OrgUsage) != 5 || len(env.Data.Engagement) != 7 {
		t.Errorf("analytics lengths: tools=%d orgs=%d engagement=%d",
			len(env.Data.ToolUsage), len(env.Data.OrgUsage), len(env.Data.Engagement))
	}
}

type failingInstitutions struct {
	repository.Repository[int, models.Institution]
}

func (failingInstitutions) GetAll(context.Context) ([]models.Institution, error) {
	return nil, errors.New("connection refused")
}

func TestServeDashboard_StoreError(t *testing.T) {
	deps := testutil.NewDeps(t)
	h := dashboard.NewHandler(failingInstitutions{deps.Institutions}, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)

	rec := testutil.Serve(dashboard.Routes(h, deps.Sessions),
		testutil.SignedInRequest(t, testutil.AdminUser(), http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}

type fakeActivity struct {
	events   []audit.Event
	err      error
	category string
}

func (f *fakeActivity) Recent(_ context.Context, category string, _ int64) ([]audit.Event, error) {
	f.category = category
	return f.events, f.err
}

func TestServeDashboard_RecentActivity(t *testing.T) {
	deps := testutil.NewDeps(t)
	h := dashboard.NewHandler(deps.Institutions, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)
	src := &fakeActivity{events: []audit.Event{
		{Category: audit.CategoryAdmin, EventType: audit.EventInstitutionCreated},
	}}
	h.Activity = src

	rec := testutil.Serve(dashboard.Routes(h, deps.Sessions),
		testutil.SignedInRequest(t, testutil.AdminUser(), http.MethodGet, "/", nil))
	env := testutil.Decode[dashboardBody](t, rec)

	if src.category != audit.CategoryAdmin {
		t.Errorf("category: got %q, want %q", src.category, audit.CategoryAdmin)
	}
	if len(env.Data.RecentActivity) != 1 || env.Data.RecentActivity[0].EventType != audit.EventInstitutionCreated {
		t.Errorf("recent activity: got %+v", env.Data.RecentActivity)
	}
}

func TestServeDashboard_RecentActivityErrorIsOmitted(t *testing.T) {
	deps := testutil.NewDeps(t)
	h := dashboard.NewHandler(deps.Institutions, deps.Students, deps.Teachers, deps.ErrLog, deps.Log)
	h.Activity = &fakeActivity{err: errors.New("cursor closed")}

	rec := testutil.Serve(dashboard.Routes(h, deps.Sessions),
		testutil.SignedInRequest(t, testutil.AdminUser(), http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if env := testutil.Decode[dashboardBody](t, rec); len(env.Data.RecentActivity) != 0 {
		t.Errorf("recent activity: got %+v, want none", env.Data.RecentActivity)
	}
}

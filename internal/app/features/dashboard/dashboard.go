// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/audit"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/seed"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"go.uber.org/zap"
)

type headerView struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayRole string `json:"displayRole"`
}

// counts are read live from the stores on every request.
type counts struct {
	Schools      int   `json:"schools"`
	Coaching     int   `json:"coaching"`
	Institutions int   `json:"institutions"`
	Students     int64 `json:"students"`
	Teachers     int64 `json:"teachers"`
}

type dashboardData struct {
	User        headerView             `json:"user"`
	Counts      counts                 `json:"counts"`
	UsageTrends []seed.MonthlyUsage    `json:"usageTrends"`
	ToolUsage   []seed.ToolShare       `json:"toolUsage"`
	OrgUsage    []seed.OrgUsage        `json:"orgUsage"`
	Engagement  []seed.DailyEngagement `json:"engagement"`

	RecentActivity []audit.Event `json:"recentActivity,omitempty"`
}

// recentActivityLimit caps the admin events shown on the dashboard.
const recentActivityLimit = 10

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, auth.EntryPath, http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "dashboard counts")
	defer cancel()

	c, err := h.fetchCounts(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard counts failed", err, "A database error occurred.")
		return
	}

	h.Log.Debug("dashboard served", zap.String("user", u.Email))

	apiresp.OK(w, r, dashboardData{
		User: headerView{
			Name:        u.Name,
			Email:       u.Email,
			Role:        u.Role,
			DisplayRole: u.DisplayRole(),
		},
		Counts:      c,
		UsageTrends: seed.UsageTrends(),
		ToolUsage:   seed.ToolUsage(),
		OrgUsage:    seed.OrgUsageData(),
		Engagement:  seed.Engagement(),

		RecentActivity: h.recentActivity(ctx),
	})
}

func (h *Handler) fetchCounts(ctx context.Context) (counts, error) {
	var c counts
	insts, err := h.Institutions.GetAll(ctx)
	if err != nil {
		return c, fmt.Errorf("list institutions: %w", err)
	}
	for _, in := range insts {
		switch in.Type {
		case models.TypeSchool:
			c.Schools++
		case models.TypeCoaching:
			c.Coaching++
		}
	}
	c.Institutions = len(insts)

	if c.Students, err = h.Students.Count(ctx); err != nil {
		return c, fmt.Errorf("count students: %w", err)
	}
	if c.Teachers, err = h.Teachers.Count(ctx); err != nil {
		return c, fmt.Errorf("count teachers: %w", err)
	}
	return c, nil
}

// recentActivity returns the newest admin events. A failed read leaves the
// feed out rather than failing the page.
func (h *Handler) recentActivity(ctx context.Context) []audit.Event {
	if h.Activity == nil {
		return nil
	}
	events, err := h.Activity.Recent(ctx, audit.CategoryAdmin, recentActivityLimit)
	if err != nil {
		h.Log.Warn("dashboard activity failed", zap.Error(err))
		return nil
	}
	return events
}

// internal/app/features/organizations/screen.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listquery"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listview"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

const (
	screenName = "organizations"
	typeFilter = "type"
)

type list = listview.View[int, models.Institution]

// screen is the per-session state of the organizations screen.
type screen struct {
	list *list
}

func (s *screen) Close() { s.list.Close() }

func institutionPipeline() *listquery.Pipeline[models.Institution] {
	isType := func(t string) func(models.Institution) bool {
		return func(i models.Institution) bool { return i.Type == t }
	}
	return &listquery.Pipeline[models.Institution]{
		Search: []func(models.Institution) string{
			func(i models.Institution) string { return i.Name },
			func(i models.Institution) string { return i.Address },
			func(i models.Institution) string { return i.District },
			func(i models.Institution) string { return i.State },
			func(i models.Institution) string { return i.Pincode },
		},
		Enabled: models.Institution.Enabled,
		Ranges: map[string]listquery.RangeFilter[models.Institution]{
			typeFilter: {Bands: []listquery.Band[models.Institution]{
				{Name: models.TypeSchool, Match: isType(models.TypeSchool)},
				{Name: models.TypeCoaching, Match: isType(models.TypeCoaching)},
			}},
		},
		Fields: map[string]listquery.Field[models.Institution]{
			"name":     {Compare: listquery.ByText(func(i models.Institution) string { return i.Name })},
			"district": {Compare: listquery.ByText(func(i models.Institution) string { return i.District })},
		},
	}
}

func (h *Handler) newScreen() (*screen, error) {
	return &screen{list: listview.New(listview.Config[int, models.Institution]{
		Repo:     h.Institutions,
		Pipeline: institutionPipeline(),
		Key:      func(i models.Institution) int { return i.ID },
		Debounce: h.Debounce,
		Defaults: listquery.Criteria{
			Status: listquery.StatusAll,
			Ranges: map[string]string{typeFilter: models.TypeSchool},
		},
	})}, nil
}

// open returns the caller's organizations screen, creating it when the
// session was elsewhere.
func (h *Handler) open(r *http.Request) *screen {
	u, _ := auth.CurrentUser(r)
	s, _ := screens.Open(h.Screens, u.Token, screenName, h.newScreen)
	return s
}

// pageView is the organizations screen as rendered for the client.
type pageView struct {
	Tab string `json:"tab"`
	listview.Result[int, models.Institution]
}

func tabOf(c listquery.Criteria) string {
	if t := c.Ranges[typeFilter]; t != "" {
		return t
	}
	return models.TypeSchool
}

func (h *Handler) pageCtx(r *http.Request, op string) (context.Context, context.CancelFunc) {
	return timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, op)
}

// render writes the current page with the given status and message.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, s *screen, status int, msg string) {
	ctx, cancel := h.pageCtx(r, "organizations page")
	defer cancel()

	res, err := s.list.Page(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load organizations failed", err, "A database error occurred.")
		return
	}
	apiresp.Write(w, r, status, apiresp.Response{
		Status:  apiresp.StatusOK,
		Data:    pageView{Tab: tabOf(res.Criteria), Result: res},
		Message: msg,
	})
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
		apiresp.Fail(w, r, http.StatusConflict, "No organization is being edited.")
	case errors.Is(err, repository.ErrDuplicateID):
		apiresp.Fail(w, r, http.StatusConflict, "An organization with this id already exists.")
	default:
		h.ErrLog.LogServerError(w, r, op+" failed", err, "A database error occurred.")
	}
}

// internal/app/features/users/people.go
package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/policy/peoplepolicy"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/htmlsanitize"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listview"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

var errBlankName = errors.New("name is blank")

type renameRequest struct {
	Name string `json:"name"`
}

func keyParam(r *http.Request) string {
	raw := chi.URLParam(r, "key")
	if k, err := url.PathUnescape(raw); err == nil {
		return k
	}
	return raw
}

func flipStudent(s models.Student) models.Student {
	s.Active = !s.Active
	return s
}

func flipTeacher(t models.Teacher) models.Teacher {
	if t.Enabled() {
		t.Status = models.StatusDisabled
	} else {
		t.Status = models.StatusEnabled
	}
	return t
}

// deny reports a refused people-record change and records it.
func (h *Handler) deny(w http.ResponseWriter, r *http.Request, action, key, msg string) {
	h.AuditLog.PermissionDenied(r.Context(), r, action, key)
	apiresp.Fail(w, r, http.StatusForbidden, msg)
}

// HandleToggle enables or disables a student or teacher on the active tab.
// Viewers are refused and nothing changes.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	key := keyParam(r)
	if !peoplepolicy.CanToggle(r) {
		h.deny(w, r, "toggle", key, peoplepolicy.DenyToggle)
		return
	}

	ctx, cancel := h.ctx(r, "users toggle")
	defer cancel()

	if s.Tab() == TabTeachers {
		id, err := strconv.Atoi(key)
		if err != nil {
			apiresp.Fail(w, r, http.StatusBadRequest, "Invalid teacher id.")
			return
		}
		t, found, err := s.teachers.Toggle(ctx, id, flipTeacher)
		if err != nil {
			h.fail(w, r, "toggle teacher", err)
			return
		}
		if found {
			h.AuditLog.PersonToggled(ctx, r, kindTeacher, key, t.Enabled())
		}
	} else {
		st, found, err := s.students.Toggle(ctx, key, flipStudent)
		if err != nil {
			h.fail(w, r, "toggle student", err)
			return
		}
		if found {
			h.AuditLog.PersonToggled(ctx, r, kindStudent, key, st.Active)
		}
	}
	h.render(w, r, s, http.StatusOK, "")
}

// HandleEdit opens the rename form for a person on the active tab.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	key := keyParam(r)
	if !peoplepolicy.CanEdit(r) {
		h.deny(w, r, "edit", key, peoplepolicy.DenyEdit)
		return
	}

	ctx, cancel := h.ctx(r, "users edit")
	defer cancel()

	var err error
	if s.Tab() == TabTeachers {
		id, convErr := strconv.Atoi(key)
		if convErr != nil {
			apiresp.Fail(w, r, http.StatusBadRequest, "Invalid teacher id.")
			return
		}
		_, _, err = s.teachers.BeginEdit(ctx, id)
	} else {
		_, _, err = s.students.BeginEdit(ctx, key)
	}
	if err != nil {
		h.fail(w, r, "begin edit", err)
		return
	}
	h.render(w, r, s, http.StatusOK, "")
}

// rename commits name over the open edit buffer of v and returns the
// previous name and the saved record.
func rename[K comparable, T any](ctx context.Context, v *listview.View[K, T], name string, get func(T) string, set func(T, string) T) (string, T, error) {
	var zero T
	cur, ok := v.Editing()
	if !ok {
		return "", zero, listview.ErrNoEdit
	}
	if name == "" {
		return "", zero, errBlankName
	}
	saved, err := v.SaveEdit(ctx, func(t T) (T, error) { return set(t, name), nil })
	return get(cur), saved, err
}

// HandleEditSave renames the person being edited. The name is trimmed and
// must not be empty; on error the form stays open.
func (h *Handler) HandleEditSave(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := apiresp.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode rename request failed", err, "Invalid request body.")
		return
	}
	s := h.open(r)
	if !h.ready(w, r, s) {
		return
	}
	if !peoplepolicy.CanEdit(r) {
		h.deny(w, r, "edit", "", peoplepolicy.DenyEdit)
		return
	}
	name := htmlsanitize.PlainText(req.Name)

	ctx, cancel := h.ctx(r, "users save")
	defer cancel()

	var (
		old, key, kind string
		err            error
	)
	if s.Tab() == TabTeachers {
		var t models.Teacher
		kind = kindTeacher
		old, t, err = rename(ctx, s.teachers, name,
			func(t models.Teacher) string { return t.Name },
			func(t models.Teacher, n string) models.Teacher { t.Name = n; return t })
		key = strconv.Itoa(t.ID)
	} else {
		var st models.Student
		kind = kindStudent
		old, st, err = rename(ctx, s.students, name,
			func(s models.Student) string { return s.Name },
			func(s models.Student, n string) models.Student { s.Name = n; return s })
		key = st.Email
	}

	switch {
	case errors.Is(err, errBlankName):
		apiresp.Fail(w, r, http.StatusBadRequest, "Name is required.")
		return
	case err != nil:
		h.fail(w, r, "rename", err)
		return
	}

	h.AuditLog.PersonRenamed(ctx, r, kind, key, name)
	h.render(w, r, s, http.StatusOK, fmt.Sprintf("Updated name to %q for %s", name, old))
}

// HandleEditCancel closes the rename form.
func (h *Handler) HandleEditCancel(w http.ResponseWriter, r *http.Request) {
	s := h.open(r)
	s.active().CancelEdit()
	h.render(w, r, s, http.StatusOK, "")
}

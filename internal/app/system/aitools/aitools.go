// Package aitools manages the AI tools allocated to one organization and
// the short log of recent changes shown beside them.
package aitools

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

// ActivityLimit bounds the recent activity log.
const ActivityLimit = 5

// TimestampLayout formats activity times.
const TimestampLayout = "3:04:05 PM"

// Catalog lists the tools an organization can be given.
var Catalog = []string{
	"Lesson Planner",
	"Interactive Whiteboard",
	"Performance Dashboard",
	"Homework Assistant",
	"Exam Simulator",
}

var (
	ErrNoSelection   = errors.New("no tool selected")
	ErrUnknownTool   = errors.New("tool is not in the catalog")
	ErrToolExists    = errors.New("tool already allocated")
	ErrInvalidTarget = errors.New("target must be Students or Teachers")
	ErrNoSchool      = errors.New("school data not available")
)

// ValidTarget reports whether t names a tool list.
func ValidTarget(t string) bool {
	return t == models.TargetStudents || t == models.TargetTeachers
}

// Available returns the catalog tools not yet in either of s's lists, in
// catalog order.
func Available(s models.SchoolData) []string {
	out := make([]string, 0, len(Catalog))
	for _, name := range Catalog {
		if !has(s.AiTools.ForStudents, name) && !has(s.AiTools.ForTeachers, name) {
			out = append(out, name)
		}
	}
	return out
}

func has(tools []models.AiTool, name string) bool {
	return slices.ContainsFunc(tools, func(t models.AiTool) bool { return t.Name == name })
}

func list(s *models.SchoolData, target string) *[]models.AiTool {
	if target == models.TargetTeachers {
		return &s.AiTools.ForTeachers
	}
	return &s.AiTools.ForStudents
}

// Board edits one organization's tools. Every change is persisted through
// the repository and recorded in the activity log. It is safe for
// concurrent use.
type Board struct {
	mu       sync.Mutex
	repo     repository.Repository[int, models.SchoolData]
	id       int
	now      func() time.Time
	activity []models.RecentToolActivity
}

// NewBoard returns a board for organization id with an empty activity log.
func NewBoard(repo repository.Repository[int, models.SchoolData], id int) *Board {
	return &Board{repo: repo, id: id, now: time.Now}
}

// WithClock replaces the clock used for activity timestamps.
func (b *Board) WithClock(now func() time.Time) *Board {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
	return b
}

// ID returns the organization id.
func (b *Board) ID() int { return b.id }

// School loads the current aggregate.
func (b *Board) School(ctx context.Context) (models.SchoolData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

// Activity returns the log, newest first.
func (b *Board) Activity() []models.RecentToolActivity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.RecentToolActivity{}, b.activity...)
}

// Add allocates a catalog tool to target, enabled, and increments the
// allocated counter.
func (b *Board) Add(ctx context.Context, name, target string) (models.SchoolData, error) {
	if name == "" {
		return models.SchoolData{}, ErrNoSelection
	}
	if !ValidTarget(target) {
		return models.SchoolData{}, ErrInvalidTarget
	}
	if !slices.Contains(Catalog, name) {
		return models.SchoolData{}, ErrUnknownTool
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.load(ctx)
	if err != nil {
		return models.SchoolData{}, err
	}
	if has(s.AiTools.ForStudents, name) || has(s.AiTools.ForTeachers, name) {
		return models.SchoolData{}, ErrToolExists
	}
	l := list(&s, target)
	*l = append(*l, models.AiTool{Name: name, Enabled: true})
	s.AiTools.Allocated++

	if err := b.save(ctx, s); err != nil {
		return models.SchoolData{}, err
	}
	b.record(name, target, models.ActionAdded)
	return s, nil
}

// Remove drops name from target and decrements the allocated counter. A
// tool not in the list is a no-op and reports false.
func (b *Board) Remove(ctx context.Context, name, target string) (models.SchoolData, bool, error) {
	if !ValidTarget(target) {
		return models.SchoolData{}, false, ErrInvalidTarget
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.load(ctx)
	if err != nil {
		return models.SchoolData{}, false, err
	}
	l := list(&s, target)
	if !has(*l, name) {
		return s, false, nil
	}
	*l = slices.DeleteFunc(*l, func(t models.AiTool) bool { return t.Name == name })
	s.AiTools.Allocated--

	if err := b.save(ctx, s); err != nil {
		return models.SchoolData{}, false, err
	}
	b.record(name, target, models.ActionRemoved)
	return s, true, nil
}

// Toggle flips the enabled flag of name in target. The logged action is
// Disabled when the tool was enabled and Enabled otherwise. A tool not in
// the list is a no-op and reports false.
func (b *Board) Toggle(ctx context.Context, name, target string) (models.SchoolData, bool, error) {
	if !ValidTarget(target) {
		return models.SchoolData{}, false, ErrInvalidTarget
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.load(ctx)
	if err != nil {
		return models.SchoolData{}, false, err
	}
	l := list(&s, target)
	i := slices.IndexFunc(*l, func(t models.AiTool) bool { return t.Name == name })
	if i < 0 {
		return s, false, nil
	}
	action := models.ActionEnabled
	if (*l)[i].Enabled {
		action = models.ActionDisabled
	}
	(*l)[i].Enabled = !(*l)[i].Enabled

	if err := b.save(ctx, s); err != nil {
		return models.SchoolData{}, false, err
	}
	b.record(name, target, action)
	return s, true, nil
}

// Close satisfies screens.Closer; a board holds nothing to release.
func (b *Board) Close() {}

func (b *Board) load(ctx context.Context) (models.SchoolData, error) {
	s, err := b.repo.GetByID(ctx, b.id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.SchoolData{}, ErrNoSchool
	}
	if err != nil {
		return models.SchoolData{}, err
	}
	return s.Clone(), nil
}

func (b *Board) save(ctx context.Context, s models.SchoolData) error {
	n, err := b.repo.Update(ctx, s)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoSchool
	}
	return nil
}

func (b *Board) record(name, target, action string) {
	entry := models.RecentToolActivity{
		Name:      name,
		Target:    target,
		Timestamp: b.now().Format(TimestampLayout),
		Action:    action,
	}
	b.activity = append([]models.RecentToolActivity{entry}, b.activity...)
	if len(b.activity) > ActivityLimit {
		b.activity = b.activity[:ActivityLimit]
	}
}

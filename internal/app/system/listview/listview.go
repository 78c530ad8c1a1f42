// Package listview holds the state of one list on a console screen: the
// query criteria, the current page, the debounced search input and the
// open add/edit/remove forms. Every read recomputes the page from the
// repository so mutations are always reflected.
package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/debounce"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listquery"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/paging"
)

var (
	ErrUnknownField  = errors.New("unknown sort field")
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrNoEdit        = errors.New("no edit in progress")
	ErrIDChanged     = errors.New("edit may not change the record id")
	ErrInvalidMove   = errors.New("invalid page request")
)

// Config declares a list.
type Config[K comparable, T any] struct {
	Repo     repository.Repository[K, T]
	Pipeline *listquery.Pipeline[T]
	Key      repository.KeyFunc[K, T]
	Debounce time.Duration
	// Defaults are the criteria restored by Reset.
	Defaults listquery.Criteria
}

// View is one list's state. It is safe for concurrent use.
type View[K comparable, T any] struct {
	mu  sync.Mutex
	cfg Config[K, T]
	deb *debounce.Debouncer

	criteria    listquery.Criteria
	searchInput string
	page        int

	editing *T
	adding  bool
	removal *K
}

// New returns a view on page 1 with the default criteria.
func New[K comparable, T any](cfg Config[K, T]) *View[K, T] {
	if cfg.Defaults.Status == "" {
		cfg.Defaults.Status = listquery.StatusAll
	}
	return &View[K, T]{
		cfg:      cfg,
		deb:      debounce.New(cfg.Debounce),
		criteria: cfg.Defaults.Clone(),
		page:     1,
	}
}

// Result is the derived view model for the current page.
type Result[K comparable, T any] struct {
	Items         []T                `json:"items"`
	Page          int                `json:"page"`
	TotalPages    int                `json:"totalPages"`
	Total         int                `json:"total"`
	Range         paging.Range       `json:"range"`
	Window        []paging.Item      `json:"window"`
	HasPrev       bool               `json:"hasPrev"`
	HasNext       bool               `json:"hasNext"`
	Criteria      listquery.Criteria `json:"criteria"`
	SearchInput   string             `json:"searchInput"`
	SearchPending bool               `json:"searchPending"`
	Editing       *T                 `json:"editing,omitempty"`
	Adding        bool               `json:"adding"`
	PendingRemove *K                 `json:"pendingRemove,omitempty"`

	// Filtered is the full filtered and sorted sequence, for summaries
	// computed over more than the visible page.
	Filtered []T `json:"-"`
}

// filtered loads the source and applies the criteria. Caller holds mu.
func (v *View[K, T]) filtered(ctx context.Context) ([]T, error) {
	all, err := v.cfg.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load list: %w", err)
	}
	return v.cfg.Pipeline.Apply(all, v.criteria), nil
}

// reclamp pulls the current page back within range. Caller holds mu.
func (v *View[K, T]) reclamp(ctx context.Context) ([]T, error) {
	rows, err := v.filtered(ctx)
	if err != nil {
		return nil, err
	}
	v.page = paging.Clamp(v.page, paging.TotalPages(len(rows)))
	return rows, nil
}

// Page recomputes the current page, clamping it if the filtered set shrank.
func (v *View[K, T]) Page(ctx context.Context) (Result[K, T], error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	rows, err := v.reclamp(ctx)
	if err != nil {
		return Result[K, T]{}, err
	}
	total := paging.TotalPages(len(rows))
	nav := paging.Nav{Page: v.page, Total: total}

	res := Result[K, T]{
		Items:         append([]T(nil), paging.Slice(rows, v.page)...),
		Page:          v.page,
		TotalPages:    total,
		Total:         len(rows),
		Range:         paging.ComputeRange(v.page, len(rows)),
		Window:        paging.Window(v.page, total),
		HasPrev:       nav.HasPrev(),
		HasNext:       nav.HasNext(),
		Criteria:      v.criteria.Clone(),
		SearchInput:   v.searchInput,
		SearchPending: v.deb.Pending(),
		Adding:        v.adding,
		Filtered:      rows,
	}
	if v.editing != nil {
		e := *v.editing
		res.Editing = &e
	}
	if v.removal != nil {
		k := *v.removal
		res.PendingRemove = &k
	}
	return res, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Criteria                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// Search records the raw input and commits it after the debounce interval.
// Committing resets the page to 1.
func (v *View[K, T]) Search(q string) {
	v.mu.Lock()
	v.searchInput = q
	v.mu.Unlock()

	v.deb.Trigger(func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.criteria.Search = q
		v.page = 1
	})
}

// FlushSearch commits a pending search immediately.
func (v *View[K, T]) FlushSearch() {
	v.deb.Flush()
}

// SetStatus changes the status filter.
func (v *View[K, T]) SetStatus(status string) error {
	if !listquery.ValidStatus(status) {
		return fmt.Errorf("%w: status %q", ErrInvalidFilter, status)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Status = status
	return nil
}

// SetRange selects a band of a range filter.
func (v *View[K, T]) SetRange(filter, band string) error {
	if !v.cfg.Pipeline.ValidBand(filter, band) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidFilter, filter, band)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.criteria.Ranges == nil {
		v.criteria.Ranges = map[string]string{}
	}
	v.criteria.Ranges[filter] = band
	return nil
}

// SortBy applies a click on a sort control and returns to page 1.
func (v *View[K, T]) SortBy(field string) error {
	if !v.cfg.Pipeline.HasField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Sort = v.criteria.Sort.Toggle(field, v.cfg.Pipeline.InitialDirection(field))
	v.page = 1
	return nil
}

// SelectSort picks a sort field in its initial direction and returns to
// page 1.
func (v *View[K, T]) SelectSort(field string) error {
	if !v.cfg.Pipeline.HasField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Sort = v.criteria.Sort.Select(field, v.cfg.Pipeline.InitialDirection(field))
	v.page = 1
	return nil
}

// Reset restores the default criteria, drops any pending search and open
// forms, and returns to page 1. Extra ranges are merged over the defaults.
func (v *View[K, T]) Reset(ranges map[string]string) {
	v.deb.Stop()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria = v.cfg.Defaults.Clone()
	for k, b := range ranges {
		if v.criteria.Ranges == nil {
			v.criteria.Ranges = map[string]string{}
		}
		v.criteria.Ranges[k] = b
	}
	v.searchInput = ""
	v.page = 1
	v.editing = nil
	v.adding = false
	v.removal = nil
}

// Criteria returns a copy of the committed criteria.
func (v *View[K, T]) Criteria() listquery.Criteria {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.criteria.Clone()
}

// Close abandons any pending search.
func (v *View[K, T]) Close() {
	v.deb.Stop()
}

/*─────────────────────────────────────────────────────────────────────────────*
| Pagination                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (v *View[K, T]) move(ctx context.Context, step func(paging.Nav) int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows, err := v.reclamp(ctx)
	if err != nil {
		return err
	}
	nav := paging.Nav{Page: v.page, Total: paging.TotalPages(len(rows))}
	v.page = step(nav)
	return nil
}

// SetPage jumps to page, clamped to the valid range.
func (v *View[K, T]) SetPage(ctx context.Context, page int) error {
	return v.move(ctx, func(n paging.Nav) int { return paging.Clamp(page, n.Total) })
}

// NextPage moves forward one page unless already on the last.
func (v *View[K, T]) NextPage(ctx context.Context) error {
	return v.move(ctx, paging.Nav.Next)
}

// PrevPage moves back one page unless already on the first.
func (v *View[K, T]) PrevPage(ctx context.Context) error {
	return v.move(ctx, paging.Nav.Prev)
}

// Key applies a keyboard shortcut (modifier plus left/right arrow).
func (v *View[K, T]) Key(ctx context.Context, key string, modifier bool) error {
	return v.move(ctx, func(n paging.Nav) int { return n.Key(key, modifier) })
}

// Move is a pagination request from the list controls: an explicit page,
// a next/prev step, or a keyboard shortcut.
type Move struct {
	Page      *int   `json:"page,omitempty"`
	Direction string `json:"direction,omitempty"` // next | prev
	Key       string `json:"key,omitempty"`
	Modifier  bool   `json:"modifier,omitempty"`
}

// Navigate applies m. Exactly one of Page, Direction or Key is honored, in
// that order.
func (v *View[K, T]) Navigate(ctx context.Context, m Move) error {
	switch {
	case m.Page != nil:
		return v.SetPage(ctx, *m.Page)
	case m.Direction == "next":
		return v.NextPage(ctx)
	case m.Direction == "prev":
		return v.PrevPage(ctx)
	case m.Direction != "":
		return fmt.Errorf("%w: direction %q", ErrInvalidMove, m.Direction)
	case m.Key != "":
		return v.Key(ctx, m.Key, m.Modifier)
	default:
		return ErrInvalidMove
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Mutations                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// Toggle applies flip to every record with id, each from its own value,
// and returns the first flipped record. A missing id is a no-op and reports
// false.
func (v *View[K, T]) Toggle(ctx context.Context, id K, flip func(T) T) (T, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var (
		zero, first T
		seen        bool
	)
	n, err := v.cfg.Repo.UpdateFunc(ctx, id, func(cur T) T {
		next := flip(cur)
		if !seen {
			first, seen = next, true
		}
		return next
	})
	if err != nil {
		return zero, false, err
	}
	if n == 0 {
		return zero, false, nil
	}
	if _, err := v.reclamp(ctx); err != nil {
		return zero, false, err
	}
	return first, true, nil
}

// BeginEdit opens the edit form pre-populated with the record. A missing id
// leaves no form open and reports false.
func (v *View[K, T]) BeginEdit(ctx context.Context, id K) (T, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	cur, err := v.cfg.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	v.editing = &cur
	return cur, true, nil
}

// Editing returns the edit buffer, if a form is open.
func (v *View[K, T]) Editing() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.editing == nil {
		var zero T
		return zero, false
	}
	return *v.editing, true
}

// SaveEdit applies patch to the edit buffer and commits it. If patch fails
// the form stays open with the buffer unchanged.
func (v *View[K, T]) SaveEdit(ctx context.Context, patch func(T) (T, error)) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	if v.editing == nil {
		return zero, ErrNoEdit
	}
	next, err := patch(*v.editing)
	if err != nil {
		return zero, err
	}
	if v.cfg.Key(next) != v.cfg.Key(*v.editing) {
		return zero, ErrIDChanged
	}
	if _, err := v.cfg.Repo.Update(ctx, next); err != nil {
		return zero, err
	}
	v.editing = nil
	if _, err := v.reclamp(ctx); err != nil {
		return zero, err
	}
	return next, nil
}

// CancelEdit discards the edit buffer.
func (v *View[K, T]) CancelEdit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editing = nil
}

// BeginAdd opens the add form.
func (v *View[K, T]) BeginAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = true
}

// CancelAdd closes the add form.
func (v *View[K, T]) CancelAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
}

// Add appends the record produced by build, which receives the current
// collection length. If build fails nothing is inserted and the form stays
// open. On success the form closes; the current page is kept.
func (v *View[K, T]) Add(ctx context.Context, build func(count int) (T, error)) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	n, err := v.cfg.Repo.Count(ctx)
	if err != nil {
		return zero, err
	}
	rec, err := build(int(n))
	if err != nil {
		return zero, err
	}
	if err := v.cfg.Repo.Insert(ctx, rec); err != nil {
		return zero, err
	}
	v.adding = false
	if _, err := v.reclamp(ctx); err != nil {
		return zero, err
	}
	return rec, nil
}

// RequestRemove opens the confirmation step for id. A missing id opens
// nothing and reports false.
func (v *View[K, T]) RequestRemove(ctx context.Context, id K) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := v.cfg.Repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	v.removal = &id
	return true, nil
}

// ConfirmRemove deletes the record awaiting confirmation and re-clamps the
// current page. It returns the removed id, or false if nothing was pending.
func (v *View[K, T]) ConfirmRemove(ctx context.Context) (K, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero K
	if v.removal == nil {
		return zero, false, nil
	}
	id := *v.removal
	if _, err := v.cfg.Repo.Delete(ctx, id); err != nil {
		return zero, false, err
	}
	v.removal = nil
	if _, err := v.reclamp(ctx); err != nil {
		return zero, false, err
	}
	return id, true, nil
}

// CancelRemove closes the confirmation step.
func (v *View[K, T]) CancelRemove() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.removal = nil
}

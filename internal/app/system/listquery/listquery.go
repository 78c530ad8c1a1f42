// Package listquery derives a filtered, sorted view of a collection.
//
// A Pipeline is declared once per record type with accessors for search
// text, status, range bands and sortable fields. Apply recomputes the view
// from the source slice and a Criteria value; nothing is cached.
package listquery

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Status filter values.
const (
	StatusAll      = "all"
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)

// BandAll bypasses a range filter.
const BandAll = "all"

// ValidStatus reports whether s is a status filter value.
func ValidStatus(s string) bool {
	return s == StatusAll || s == StatusEnabled || s == StatusDisabled
}

// Field is a sortable column.
type Field[T any] struct {
	Compare func(a, b T) int
	// Initial is the direction used when the field is first selected.
	Initial Direction
}

// Band is one enumerated range of a range filter.
type Band[T any] struct {
	Name  string
	Match func(T) bool
}

// RangeFilter is a named set of bands. Selecting BandAll or "" bypasses it.
type RangeFilter[T any] struct {
	Bands []Band[T]
}

func (r RangeFilter[T]) band(name string) (Band[T], bool) {
	for _, b := range r.Bands {
		if b.Name == name {
			return b, true
		}
	}
	return Band[T]{}, false
}

// Pipeline declares how records of type T are searched, filtered and sorted.
type Pipeline[T any] struct {
	// Search returns the texts matched by the free-text query.
	Search []func(T) string
	// Enabled maps a record onto the status filter. Nil disables status filtering.
	Enabled func(T) bool
	Ranges  map[string]RangeFilter[T]
	Fields  map[string]Field[T]
}

// Criteria is the full set of inputs to a query.
type Criteria struct {
	Search string            `json:"search"`
	Status string            `json:"status"`
	Ranges map[string]string `json:"ranges,omitempty"`
	Sort   SortState         `json:"sort"`
}

// Clone returns a copy that shares no map with c.
func (c Criteria) Clone() Criteria {
	out := c
	if c.Ranges != nil {
		out.Ranges = make(map[string]string, len(c.Ranges))
		for k, v := range c.Ranges {
			out.Ranges[k] = v
		}
	}
	return out
}

// HasField reports whether name is a sortable field.
func (p *Pipeline[T]) HasField(name string) bool {
	_, ok := p.Fields[name]
	return ok
}

// InitialDirection returns the first direction used for a field.
func (p *Pipeline[T]) InitialDirection(name string) Direction {
	return p.Fields[name].Initial
}

// ValidBand reports whether band is selectable for the named range filter.
func (p *Pipeline[T]) ValidBand(filter, band string) bool {
	r, ok := p.Ranges[filter]
	if !ok {
		return false
	}
	if band == "" || band == BandAll {
		return true
	}
	_, ok = r.band(band)
	return ok
}

// Matches reports whether item satisfies every predicate in c.
func (p *Pipeline[T]) Matches(item T, c Criteria) bool {
	return p.matchSearch(item, text.Fold(strings.TrimSpace(c.Search))) &&
		p.matchStatus(item, c.Status) &&
		p.matchRanges(item, c.Ranges)
}

func (p *Pipeline[T]) matchSearch(item T, q string) bool {
	if q == "" {
		return true
	}
	for _, get := range p.Search {
		if strings.Contains(text.Fold(get(item)), q) {
			return true
		}
	}
	return false
}

func (p *Pipeline[T]) matchStatus(item T, status string) bool {
	if p.Enabled == nil {
		return true
	}
	switch status {
	case StatusEnabled:
		return p.Enabled(item)
	case StatusDisabled:
		return !p.Enabled(item)
	default:
		return true
	}
}

func (p *Pipeline[T]) matchRanges(item T, ranges map[string]string) bool {
	for name, sel := range ranges {
		if sel == "" || sel == BandAll {
			continue
		}
		r, ok := p.Ranges[name]
		if !ok {
			continue
		}
		b, ok := r.band(sel)
		if !ok || !b.Match(item) {
			return false
		}
	}
	return true
}

// Apply filters items by c and sorts the result. The input is not modified.
// Records with equal sort keys keep their source order.
func (p *Pipeline[T]) Apply(items []T, c Criteria) []T {
	q := text.Fold(strings.TrimSpace(c.Search))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p.matchSearch(it, q) && p.matchStatus(it, c.Status) && p.matchRanges(it, c.Ranges) {
			out = append(out, it)
		}
	}

	f, ok := p.Fields[c.Sort.Field]
	if !ok || f.Compare == nil {
		return out
	}
	if c.Sort.Dir == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return f.Compare(b, a) })
	} else {
		slices.SortStableFunc(out, f.Compare)
	}
	return out
}

// ByText compares records by a case-folded text key.
func ByText[T any](get func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(text.Fold(get(a)), text.Fold(get(b)))
	}
}

// ByInt compares records by an integer key.
func ByInt[T any](get func(T) int) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

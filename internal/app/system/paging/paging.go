// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of rows shown per page in every console list.
const PageSize = 5

// WindowThreshold is the largest page count rendered without ellipses.
const WindowThreshold = 5

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages returns max(1, ceil(n / PageSize)).
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Clamp limits page to [1, total].
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page > total {
		return total
	}
	if page < 1 {
		return 1
	}
	return page
}

// Bounds returns the half-open slice bounds of page within n rows.
func Bounds(page, n int) (start, end int) {
	page = Clamp(page, TotalPages(n))
	start = (page - 1) * PageSize
	if start > n {
		start = n
	}
	end = start + PageSize
	if end > n {
		end = n
	}
	return start, end
}

// Slice returns the rows on page. The result never exceeds PageSize.
func Slice[T any](rows []T, page int) []T {
	start, end := Bounds(page, len(rows))
	return rows[start:end]
}

// Range holds the 1-based display range for a page ("Showing 6-10 of 12").
type Range struct {
	Start int `json:"start"` // 0 if no results
	End   int `json:"end"`   // 0 if no results
	Total int `json:"total"`
}

// ComputeRange calculates the display range of page within n rows.
func ComputeRange(page, n int) Range {
	start, end := Bounds(page, n)
	if end == start {
		return Range{Total: n}
	}
	return Range{Start: start + 1, End: end, Total: n}
}

// Item is one entry of the page-button window. Ellipsis items carry no page.
type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Window lists the page buttons to render for cur of total.
//
// Up to WindowThreshold pages are all shown. Beyond that the first and
// last pages are always shown along with up to two pages either side of
// cur, and an ellipsis marks each gap.
func Window(cur, total int) []Item {
	if total < 1 {
		total = 1
	}
	cur = Clamp(cur, total)
	item := func(p int) Item { return Item{Page: p, Current: p == cur} }

	if total <= WindowThreshold {
		out := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, item(p))
		}
		return out
	}

	start := max(2, cur-2)
	end := min(total-1, cur+2)

	out := []Item{item(1)}
	if start > 2 {
		out = append(out, Item{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		out = append(out, item(p))
	}
	if end < total-1 {
		out = append(out, Item{Ellipsis: true})
	}
	return append(out, item(total))
}

// Nav is the prev/next state of a pager.
type Nav struct {
	Page  int `json:"page"`
	Total int `json:"total"`
}

// HasPrev reports whether the previous-page control is enabled.
func (n Nav) HasPrev() bool { return n.Page > 1 }

// HasNext reports whether the next-page control is enabled.
func (n Nav) HasNext() bool { return n.Page < n.Total }

// Prev returns the previous page, staying put at the first page.
func (n Nav) Prev() int {
	if n.HasPrev() {
		return n.Page - 1
	}
	return n.Page
}

// Next returns the next page, staying put at the last page.
func (n Nav) Next() int {
	if n.HasNext() {
		return n.Page + 1
	}
	return n.Page
}

// Keyboard keys understood by Key.
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
)

// Key applies a keyboard shortcut. Arrow keys move one page only while
// the modifier is held; anything else leaves the page unchanged.
func (n Nav) Key(key string, modifier bool) int {
	if !modifier {
		return n.Page
	}
	switch key {
	case KeyLeft:
		return n.Prev()
	case KeyRight:
		return n.Next()
	default:
		return n.Page
	}
}

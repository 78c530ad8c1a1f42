package listquery

import (
	"encoding/json"
	"fmt"
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "asc", "":
		*d = Asc
	case "desc":
		*d = Desc
	default:
		return fmt.Errorf("unknown sort direction %q", s)
	}
	return nil
}

// SortState is the active sort. An empty Field keeps source order.
type SortState struct {
	Field string    `json:"field,omitempty"`
	Dir   Direction `json:"dir"`
}

// Toggle applies a click on a sort control: the active field reverses
// direction, any other field becomes active in its initial direction.
func (s SortState) Toggle(field string, initial Direction) SortState {
	if s.Field == field {
		return SortState{Field: field, Dir: s.Dir.Reverse()}
	}
	return SortState{Field: field, Dir: initial}
}

// Select makes field active in its initial direction, as a sort dropdown does.
func (s SortState) Select(field string, initial Direction) SortState {
	return SortState{Field: field, Dir: initial}
}

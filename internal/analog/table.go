package analog

import (
	"fmt"
	"sort"
)

// SortDirection is the similarity score ordering of the table.
type SortDirection int

const (
	SortDesc SortDirection = iota
	SortAsc
	SortNone
)

// Next advances desc -> asc -> none -> desc, as repeated header presses do.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortDesc:
		return SortAsc
	case SortAsc:
		return SortNone
	}
	return SortDesc
}

func (d SortDirection) String() string {
	switch d {
	case SortDesc:
		return "desc"
	case SortAsc:
		return "asc"
	}
	return "none"
}

// Arrow is the header indicator for the direction.
func (d SortDirection) Arrow() string {
	switch d {
	case SortDesc:
		return "↓"
	case SortAsc:
		return "↑"
	}
	return "↕"
}

// ParseSortDirection accepts "desc", "asc" or "none".
func ParseSortDirection(s string) (SortDirection, error) {
	switch s {
	case "desc", "":
		return SortDesc, nil
	case "asc":
		return SortAsc, nil
	case "none":
		return SortNone, nil
	}
	return SortDesc, fmt.Errorf("invalid sort direction: %s (must be one of: desc, asc, none)", s)
}

// Query describes the table view over the analog list.
type Query struct {
	MinScore int
	MaxScore int
	Selected []string
	Sort     SortDirection
}

// DefaultQuery shows every analog sorted by descending similarity.
func DefaultQuery() Query {
	return Query{MinScore: 0, MaxScore: 100, Sort: SortDesc}
}

// Filter keeps analogs scoring within [lo, hi] that are also in selected.
// An empty selection keeps every analog in range. Input order is preserved.
func Filter(data []Analog, lo, hi int, selected []string) []Analog {
	var picked map[string]bool
	if len(selected) > 0 {
		picked = make(map[string]bool, len(selected))
		for _, name := range selected {
			picked[name] = true
		}
	}

	out := make([]Analog, 0, len(data))
	for _, a := range data {
		if a.SimilarityScore < lo || a.SimilarityScore > hi {
			continue
		}
		if picked != nil && !picked[a.Name] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Apply filters and then orders by similarity score. Ties keep input order.
func Apply(data []Analog, q Query) []Analog {
	out := Filter(data, q.MinScore, q.MaxScore, q.Selected)
	switch q.Sort {
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].SimilarityScore > out[j].SimilarityScore })
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].SimilarityScore < out[j].SimilarityScore })
	}
	return out
}

// EmptyMessage is shown when no analog passes the filters.
const (
	EmptyMessage = "No analogs match the current filters."
	EmptyHint    = "Try adjusting the similarity score range or analog selection."
)

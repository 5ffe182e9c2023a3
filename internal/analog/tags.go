package analog

import "strings"

// Tag is the colour class of a table cell.
type Tag int

const (
	TagLow Tag = iota
	TagMedium
	TagHigh
)

func (t Tag) String() string {
	switch t {
	case TagHigh:
		return "high"
	case TagMedium:
		return "medium"
	}
	return "low"
}

// CategoryTag classes a Low/Medium/High/Very High value.
func CategoryTag(v string) Tag {
	s := strings.ToLower(v)
	switch {
	case strings.Contains(s, "very high") || s == "high":
		return TagHigh
	case strings.Contains(s, "medium"):
		return TagMedium
	}
	return TagLow
}

// NumericTag classes a 0..100 score.
func NumericTag(v int) Tag {
	switch {
	case v >= 75:
		return TagHigh
	case v >= 50:
		return TagMedium
	}
	return TagLow
}

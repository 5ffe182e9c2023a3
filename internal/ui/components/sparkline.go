package components

import (
	"math"
	"strings"
)

// SparklineChart is a one-line trend of values.
type SparklineChart struct {
	Values []float64
	Width  int
	Min    float64
	Max    float64
}

// NewSparklineChart scales the chart to the range of values.
func NewSparklineChart(values []float64, width int) *SparklineChart {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)

	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	return &SparklineChart{
		Values: values,
		Width:  width,
		Min:    minVal,
		Max:    maxVal,
	}
}

// Render draws one block character per sampled value.
func (s *SparklineChart) Render() string {
	if len(s.Values) == 0 || s.Width <= 0 {
		return ""
	}

	chars := []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

	step := len(s.Values) / s.Width
	if step == 0 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < s.Width && i*step < len(s.Values); i++ {
		normalized := 0.0
		if s.Max > s.Min {
			normalized = (s.Values[i*step] - s.Min) / (s.Max - s.Min)
		}
		idx := int(normalized * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		result.WriteString(chars[idx])
	}
	return result.String()
}

package core

import "math"

// Interval is an open range of ray parameters (both bounds exclusive)
type Interval struct {
	Start, End float64
}

// NewInterval creates an interval
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// Forward returns (start, +inf)
func Forward(start float64) Interval {
	return Interval{Start: start, End: math.Inf(1)}
}

// Contains reports whether start < x < end.
// Boundary values are excluded so a ray leaving a surface at t=Start cannot hit it again.
func (i Interval) Contains(x float64) bool {
	return i.Start < x && x < i.End
}

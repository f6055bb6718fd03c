package core

import "math"

// Interval is a closed range [Min, Max] of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// DefaultRange is the admissible range for primary and secondary rays
func DefaultRange() Interval {
	return Interval{Min: Epsilon, Max: math.Inf(1)}
}

// EmptyInterval returns an interval that contains no values
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Contains reports whether t lies within the interval
func (i Interval) Contains(t float64) bool {
	return t >= i.Min && t <= i.Max
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Intersect returns the overlap of two intervals
func (i Interval) Intersect(other Interval) Interval {
	return Interval{Min: math.Max(i.Min, other.Min), Max: math.Min(i.Max, other.Max)}
}

// WithMax returns a copy of the interval with its upper bound replaced
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}

package domain

import "sort"

// MinuteInterval is a half-open time interval [Start, End) in minutes since
// midnight. All interval algebra in the service operates on this type.
type MinuteInterval struct {
	Start int
	End   int
}

// IsValid reports whether the interval has positive length.
func (i MinuteInterval) IsValid() bool {
	return i.End > i.Start
}

// Overlaps reports whether two half-open intervals truly intersect.
// Intervals that merely touch at a boundary do not overlap:
// [09:00, 10:00) and [10:00, 11:00) are adjacent, not overlapping.
func (i MinuteInterval) Overlaps(other MinuteInterval) bool {
	return i.Start < other.End && i.End > other.Start
}

// Subtract removes hole from the interval and returns the remaining parts
// (zero, one or two intervals).
func (i MinuteInterval) Subtract(hole MinuteInterval) []MinuteInterval {
	if !i.Overlaps(hole) {
		return []MinuteInterval{i}
	}

	remaining := make([]MinuteInterval, 0, 2)
	if hole.Start > i.Start {
		remaining = append(remaining, MinuteInterval{Start: i.Start, End: hole.Start})
	}
	if hole.End < i.End {
		remaining = append(remaining, MinuteInterval{Start: hole.End, End: i.End})
	}
	return remaining
}

// SubtractAll removes every hole from every base interval.
// Используется для вычитания available-блоков из blocking-блоков.
func SubtractAll(base []MinuteInterval, holes []MinuteInterval) []MinuteInterval {
	result := base
	for _, hole := range holes {
		next := make([]MinuteInterval, 0, len(result))
		for _, interval := range result {
			next = append(next, interval.Subtract(hole)...)
		}
		result = next
	}
	return result
}

// SortIntervals orders intervals ascending by start, then by end.
func SortIntervals(intervals []MinuteInterval) {
	sort.Slice(intervals, func(a, b int) bool {
		if intervals[a].Start != intervals[b].Start {
			return intervals[a].Start < intervals[b].Start
		}
		return intervals[a].End < intervals[b].End
	})
}

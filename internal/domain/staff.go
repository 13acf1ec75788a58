package domain

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// DaySchedule is one weekday entry of a staff member's weekly template.
// If Enabled is false, the staff member is not bookable that weekday
// regardless of the Start/End values.
type DaySchedule struct {
	Enabled bool
	Start   types.TimeString
	End     types.TimeString
}

// WeeklySchedule is a staff member's recurring weekly template,
// exactly one entry per weekday.
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the entry for the given weekday (Go numbering, Sunday=0).
func (w WeeklySchedule) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Enabled: false}
	}
}

// Staff represents a bookable staff member.
type Staff struct {
	ID        int64
	Name      string
	Schedule  WeeklySchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OperatingWindow resolves the staff member's open/close interval for a date.
// The second return value is false when the weekday entry is disabled (closed
// day is a valid empty state, not an error). Malformed template times are
// surfaced as an error so they never become garbage intervals.
func (s *Staff) OperatingWindow(date time.Time) (MinuteInterval, bool, error) {
	day := s.Schedule.ForWeekday(date.Weekday())
	if !day.Enabled {
		return MinuteInterval{}, false, nil
	}

	open, err := day.Start.MinutesFromMidnight()
	if err != nil {
		return MinuteInterval{}, false, err
	}
	close, err := day.End.MinutesFromMidnight()
	if err != nil {
		return MinuteInterval{}, false, err
	}
	if close <= open {
		return MinuteInterval{}, false, nil
	}

	return MinuteInterval{Start: open, End: close}, true, nil
}

// ScheduleOverride is a date-specific schedule exception for one staff member.
// Overrides are persisted and editable through the admin surface; the
// availability calculator reads only the weekly template.
type ScheduleOverride struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	Enabled   bool
	Start     types.TimeString
	End       types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

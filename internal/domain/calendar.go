package domain

// EventType classifies a calendar event for rendering.
type EventType string

const (
	EventTypeAppointment EventType = "appointment"
	EventTypeBlock       EventType = "block"
)

// EventLayout holds the column-packing result for one event. Columns are
// display lanes: width and offset are percentages of the day-column width,
// ready for absolute positioning by a renderer.
type EventLayout struct {
	Column            int
	TotalColumns      int
	WidthPercent      float64
	LeftOffsetPercent float64
}

// CalendarEvent is a derived, render-only projection of an appointment or a
// block. Start/End are decimal hours (9.5 = 09:30). Events are never
// persisted; the layout engine returns annotated copies and leaves its
// inputs untouched.
type CalendarEvent struct {
	ID       string
	Type     EventType
	Kind     BlockKind // только для Type == EventTypeBlock
	StaffIDs []int64
	Title    string
	Start    float64
	End      float64
	Layout   EventLayout
}

// Overlaps reports whether two events truly intersect in time (half-open).
func (e CalendarEvent) Overlaps(other CalendarEvent) bool {
	return e.Start < other.End && e.End > other.Start
}

// SharesStaff reports whether both events reference at least one common
// staff member.
func (e CalendarEvent) SharesStaff(other CalendarEvent) bool {
	for _, a := range e.StaffIDs {
		for _, b := range other.StaffIDs {
			if a == b {
				return true
			}
		}
	}
	return false
}

// IsAvailableBlock returns true for available-kind block events.
func (e CalendarEvent) IsAvailableBlock() bool {
	return e.Type == EventTypeBlock && e.Kind == BlockKindAvailable
}

// IsBlockingBlock returns true for blocking-kind block events.
func (e CalendarEvent) IsBlockingBlock() bool {
	return e.Type == EventTypeBlock && e.Kind == BlockKindBlocking
}

package domain

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client visit booked with one or more staff members.
// A multi-professional service carries one line item per staff member; the
// appointment interval as a whole occupies every referenced staff member.
type Appointment struct {
	ID              int64
	Reference       string // публичный UUID для клиентских ссылок
	ClientID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	Items []AppointmentItem

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentItem is a single service line inside an appointment.
// Name and price are denormalized at creation time for history.
type AppointmentItem struct {
	ID              int64
	AppointmentID   int64
	StaffID         int64
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
}

// EndTime returns the appointment end as HH:MM.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// Interval returns the occupied interval in minutes since midnight.
func (a *Appointment) Interval() (MinuteInterval, error) {
	start, err := a.StartTime.MinutesFromMidnight()
	if err != nil {
		return MinuteInterval{}, err
	}
	return MinuteInterval{Start: start, End: start + a.DurationMinutes}, nil
}

// StaffIDs returns the distinct staff members referenced by the line items,
// in item order.
func (a *Appointment) StaffIDs() []int64 {
	seen := make(map[int64]struct{}, len(a.Items))
	ids := make([]int64, 0, len(a.Items))
	for _, item := range a.Items {
		if _, ok := seen[item.StaffID]; ok {
			continue
		}
		seen[item.StaffID] = struct{}{}
		ids = append(ids, item.StaffID)
	}
	return ids
}

// References reports whether any line item belongs to the given staff member.
func (a *Appointment) References(staffID int64) bool {
	for _, item := range a.Items {
		if item.StaffID == staffID {
			return true
		}
	}
	return false
}

// IsCancelled returns true if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesTime returns true if the appointment occupies staff time.
// Every status except cancelled occupies time.
func (a *Appointment) OccupiesTime() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// DayAppointmentsFilter фильтр для выборки записей на дату
type DayAppointmentsFilter struct {
	Date             time.Time
	StaffID          *int64 // nil - записи всех мастеров
	IncludeCancelled bool
}

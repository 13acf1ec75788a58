package models

import (
	"errors"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
	// ErrInvalidRange возвращается, когда конец дня не позже начала
	ErrInvalidRange = errors.New("end must be after start")
)

// Request модели

// DayScheduleRequest один день недельного шаблона
type DayScheduleRequest struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "09:00"
	End     string `json:"end"`   // "18:00"
}

// UpdateScheduleRequest запрос на обновление недельного шаблона.
// Шаблон заменяется целиком: ровно семь дней, без частичных обновлений
type UpdateScheduleRequest struct {
	Monday    DayScheduleRequest `json:"monday"`
	Tuesday   DayScheduleRequest `json:"tuesday"`
	Wednesday DayScheduleRequest `json:"wednesday"`
	Thursday  DayScheduleRequest `json:"thursday"`
	Friday    DayScheduleRequest `json:"friday"`
	Saturday  DayScheduleRequest `json:"saturday"`
	Sunday    DayScheduleRequest `json:"sunday"`
}

// UpsertOverrideRequest запрос на установку исключения на конкретную дату
type UpsertOverrideRequest struct {
	Date    time.Time `json:"date"`
	Enabled bool      `json:"enabled"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
}

// ToDomain конвертирует день шаблона в domain модель с валидацией времени.
// Для выключенного дня времена не проверяются и не сохраняются
func (d DayScheduleRequest) ToDomain() (domain.DaySchedule, error) {
	if !d.Enabled {
		return domain.DaySchedule{Enabled: false}, nil
	}

	start, err := types.NewTimeStringFromString(d.Start)
	if err != nil {
		return domain.DaySchedule{}, ErrInvalidTime
	}
	end, err := types.NewTimeStringFromString(d.End)
	if err != nil {
		return domain.DaySchedule{}, ErrInvalidTime
	}
	if !start.IsBefore(end) {
		return domain.DaySchedule{}, ErrInvalidRange
	}

	return domain.DaySchedule{Enabled: true, Start: start, End: end}, nil
}

// ToDomain конвертирует запрос в domain недельный шаблон
func (r *UpdateScheduleRequest) ToDomain() (domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule
	var err error

	days := []struct {
		name string
		src  DayScheduleRequest
		dst  *domain.DaySchedule
	}{
		{"monday", r.Monday, &schedule.Monday},
		{"tuesday", r.Tuesday, &schedule.Tuesday},
		{"wednesday", r.Wednesday, &schedule.Wednesday},
		{"thursday", r.Thursday, &schedule.Thursday},
		{"friday", r.Friday, &schedule.Friday},
		{"saturday", r.Saturday, &schedule.Saturday},
		{"sunday", r.Sunday, &schedule.Sunday},
	}
	for _, day := range days {
		*day.dst, err = day.src.ToDomain()
		if err != nil {
			return schedule, err
		}
	}

	return schedule, nil
}

// Response модели

// DayScheduleResponse один день недельного шаблона
type DayScheduleResponse struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// ScheduleResponse недельный шаблон мастера
type ScheduleResponse struct {
	StaffID   int64               `json:"staffId"`
	Monday    DayScheduleResponse `json:"monday"`
	Tuesday   DayScheduleResponse `json:"tuesday"`
	Wednesday DayScheduleResponse `json:"wednesday"`
	Thursday  DayScheduleResponse `json:"thursday"`
	Friday    DayScheduleResponse `json:"friday"`
	Saturday  DayScheduleResponse `json:"saturday"`
	Sunday    DayScheduleResponse `json:"sunday"`
}

// OverrideResponse исключение из расписания на конкретную дату
type OverrideResponse struct {
	ID      int64  `json:"id"`
	StaffID int64  `json:"staffId"`
	Date    string `json:"date"` // "2026-08-28"
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// OverrideListResponse список исключений
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// Методы конвертации

func fromDomainDay(d domain.DaySchedule) DayScheduleResponse {
	resp := DayScheduleResponse{Enabled: d.Enabled}
	if d.Enabled {
		resp.Start = d.Start.String()
		resp.End = d.End.String()
	}
	return resp
}

// FromDomainSchedule конвертирует domain недельный шаблон в DTO
func FromDomainSchedule(staffID int64, s domain.WeeklySchedule) *ScheduleResponse {
	return &ScheduleResponse{
		StaffID:   staffID,
		Monday:    fromDomainDay(s.Monday),
		Tuesday:   fromDomainDay(s.Tuesday),
		Wednesday: fromDomainDay(s.Wednesday),
		Thursday:  fromDomainDay(s.Thursday),
		Friday:    fromDomainDay(s.Friday),
		Saturday:  fromDomainDay(s.Saturday),
		Sunday:    fromDomainDay(s.Sunday),
	}
}

// FromDomainOverride конвертирует domain исключение в DTO
func FromDomainOverride(o *domain.ScheduleOverride) OverrideResponse {
	resp := OverrideResponse{
		ID:      o.ID,
		StaffID: o.StaffID,
		Date:    o.Date.Format(domain.DateFormat),
		Enabled: o.Enabled,
	}
	if o.Enabled {
		resp.Start = o.Start.String()
		resp.End = o.End.String()
	}
	return resp
}

// FromDomainOverrideList конвертирует список исключений в DTO
func FromDomainOverrideList(overrides []*domain.ScheduleOverride) *OverrideListResponse {
	resp := &OverrideListResponse{
		Overrides: make([]OverrideResponse, 0, len(overrides)),
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, FromDomainOverride(o))
	}
	return resp
}

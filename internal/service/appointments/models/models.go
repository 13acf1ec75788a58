package models

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// GetDayAppointmentsRequest запрос на получение записей на дату
type GetDayAppointmentsRequest struct {
	Date             time.Time `json:"date"`
	StaffID          *int64    `json:"staffId,omitempty"` // Фильтр по мастеру (опционально)
	IncludeCancelled bool      `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDayAppointmentsRequest) ToDomainFilter() domain.DayAppointmentsFilter {
	return domain.DayAppointmentsFilter{
		Date:             r.Date,
		StaffID:          r.StaffID,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// AppointmentItemResponse одна услуга внутри записи
type AppointmentItemResponse struct {
	ID              int64   `json:"id"`
	StaffID         int64   `json:"staffId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	ClientID        int64  `json:"clientId"`
	Date            string `json:"date"`      // "2026-08-28"
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Items []AppointmentItemResponse `json:"items"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		Reference:       a.Reference,
		ClientID:        a.ClientID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Items:           make([]AppointmentItemResponse, 0, len(a.Items)),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if end, err := a.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	for _, item := range a.Items {
		resp.Items = append(resp.Items, AppointmentItemResponse{
			ID:              item.ID,
			StaffID:         item.StaffID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
		})
	}

	if a.CancellationReason != nil {
		resp.CancellationReason = a.CancellationReason
	}
	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if converted := FromDomainAppointment(a); converted != nil {
			resp.Appointments = append(resp.Appointments, *converted)
		}
	}
	return resp
}

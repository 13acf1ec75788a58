package create_appointment

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SPS-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// AppointmentItemRequest одна услуга внутри записи
type AppointmentItemRequest struct {
	StaffID         int64   `json:"staffId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID        int64                    `json:"clientId"`
	Date            string                   `json:"date"`      // "2026-08-28"
	StartTime       string                   `json:"startTime"` // "10:00"
	DurationMinutes int                      `json:"durationMinutes"`
	Items           []AppointmentItemRequest `json:"items"`
	Notes           *string                  `json:"notes,omitempty"`
}

// AppointmentItemResponse позиция созданной записи
type AppointmentItemResponse struct {
	ID              int64   `json:"id"`
	StaffID         int64   `json:"staffId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64                     `json:"id"`
	Reference       string                    `json:"reference"`
	ClientID        int64                     `json:"clientId"`
	Date            string                    `json:"date"`
	StartTime       string                    `json:"startTime"`
	EndTime         string                    `json:"endTime"`
	DurationMinutes int                       `json:"durationMinutes"`
	Status          string                    `json:"status"`
	Items           []AppointmentItemResponse `json:"items"`
	Notes           *string                   `json:"notes,omitempty"`
	CreatedAt       string                    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	items := make([]createAppointment.ItemRequest, len(r.Items))
	for i, item := range r.Items {
		items[i] = createAppointment.ItemRequest{
			StaffID:         item.StaffID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
		}
	}

	return &createAppointment.Request{
		ClientID:        r.ClientID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Items:           items,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	items := make([]AppointmentItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = AppointmentItemResponse{
			ID:              item.ID,
			StaffID:         item.StaffID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
		}
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		ClientID:        resp.ClientID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Items:           items,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

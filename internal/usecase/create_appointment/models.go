package create_appointment

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// ItemRequest одна услуга внутри записи, со своим мастером
type ItemRequest struct {
	StaffID         int64
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
}

// Request модель запроса на создание записи
// Интервал записи один на всю запись: каждый мастер из позиций
// занят на весь интервал (услуги исполняются одновременно)
type Request struct {
	ClientID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Items           []ItemRequest
	Notes           *string
}

// ItemResponse позиция созданной записи
type ItemResponse struct {
	ID              int64
	StaffID         int64
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
}

// Response модель ответа создания записи
type Response struct {
	ID              int64
	Reference       string
	ClientID        int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	Items           []ItemResponse
	Notes           *string
	CreatedAt       time.Time
}

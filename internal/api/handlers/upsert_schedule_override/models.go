package upsert_schedule_override

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/internal/service/schedule/models"
)

// UpsertOverrideRequest HTTP request model
type UpsertOverrideRequest struct {
	Date    string `json:"date"` // "2026-08-28"
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertOverrideRequest) ToServiceRequest() (*models.UpsertOverrideRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.UpsertOverrideRequest{
		Date:    date,
		Enabled: r.Enabled,
		Start:   r.Start,
		End:     r.End,
	}, nil
}

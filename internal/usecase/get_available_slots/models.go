package get_available_slots

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StaffID         int64     // ID мастера
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Длительность запрашиваемой услуги в минутах
}

// Response модель ответа со списком доступных времён начала
type Response struct {
	StaffID         int64
	Date            time.Time
	DurationMinutes int
	Slots           []types.TimeString // По возрастанию, формат HH:MM
}

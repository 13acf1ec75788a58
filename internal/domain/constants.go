package domain

// Default configuration values
const (
	// SlotGridMinutes шаг сетки слотов, фиксированный для всего сервиса
	SlotGridMinutes = 30

	// DefaultMinLeadTimeMinutes консервативный fallback для минимального
	// времени до записи, если настройка недоступна в хранилище.
	// Единица измерения - всегда минуты.
	DefaultMinLeadTimeMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxReasonLength           = 500
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы записей, занимающих время мастера
// Используется при агрегации занятых интервалов
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

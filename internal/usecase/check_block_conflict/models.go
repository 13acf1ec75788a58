package check_block_conflict

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Request модель запроса на проверку конфликтов кандидата-блока
type Request struct {
	StaffID int64
	Date    time.Time
	Start   types.TimeString
	End     types.TimeString
}

// Conflict описывает одну пересекающуюся запись
type Conflict struct {
	AppointmentID int64
	Reference     string
	ClientID      int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        string
}

// Response модель ответа проверки конфликтов
// Ненулевой ConflictingCount - предупреждение для вызывающего;
// это только advisory-проверка, настоящий инвариант обеспечивает
// транзакционная запись (см. create_appointment)
type Response struct {
	ConflictingCount int
	Conflicts        []Conflict
}

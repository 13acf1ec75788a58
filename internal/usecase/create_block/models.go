package create_block

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Request модель запроса на создание блока
type Request struct {
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      domain.BlockKind
	Reason    string

	// Force создаёт blocking-блок несмотря на пересечения с записями.
	// Без него пересечения возвращаются как ошибка с деталями
	Force bool
}

// ConflictingAppointment описывает запись, пересекающуюся с блоком
type ConflictingAppointment struct {
	AppointmentID int64
	Reference     string
	StartTime     types.TimeString
	EndTime       types.TimeString
}

// Response модель ответа создания блока
type Response struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      domain.BlockKind
	Reason    string
	CreatedAt time.Time

	// Conflicts заполняется при force-создании поверх записей,
	// чтобы вызывающий мог показать предупреждение
	Conflicts []ConflictingAppointment
}

package get_calendar

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// Request - запрос календаря на день
type Request struct {
	Date     time.Time
	StaffIDs []int64 // пустой список - календарь по всем мастерам
}

// Response - события дня с рассчитанной раскладкой
type Response struct {
	Date   time.Time
	Events []domain.CalendarEvent
}

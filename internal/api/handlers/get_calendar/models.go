package get_calendar

import (
	"strconv"
	"strings"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	getCalendar "github.com/m04kA/SPS-SchedulingService/internal/usecase/get_calendar"
)

// EventLayoutResponse раскладка события в дневной колонке
type EventLayoutResponse struct {
	Column            int     `json:"column"`
	TotalColumns      int     `json:"totalColumns"`
	WidthPercent      float64 `json:"widthPercent"`
	LeftOffsetPercent float64 `json:"leftOffsetPercent"`
}

// CalendarEventResponse одно событие календаря
type CalendarEventResponse struct {
	ID       string              `json:"id"`
	Type     string              `json:"type"`
	Kind     string              `json:"kind,omitempty"`
	StaffIDs []int64             `json:"staffIds"`
	Title    string              `json:"title"`
	Start    float64             `json:"start"` // десятичные часы, 9.5 = 09:30
	End      float64             `json:"end"`
	Layout   EventLayoutResponse `json:"layout"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Date   string                  `json:"date"`
	Events []CalendarEventResponse `json:"events"`
}

// ParseStaffIDs разбирает список ID через запятую.
// Пустая строка - фильтра нет, календарь по всем мастерам
func ParseStaffIDs(staffIDsStr string) ([]int64, error) {
	if staffIDsStr == "" {
		return nil, nil
	}

	parts := strings.Split(staffIDsStr, ",")
	staffIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		staffIDs = append(staffIDs, id)
	}
	return staffIDs, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	events := make([]CalendarEventResponse, len(resp.Events))
	for i, event := range resp.Events {
		events[i] = CalendarEventResponse{
			ID:       event.ID,
			Type:     string(event.Type),
			Kind:     string(event.Kind),
			StaffIDs: event.StaffIDs,
			Title:    event.Title,
			Start:    event.Start,
			End:      event.End,
			Layout: EventLayoutResponse{
				Column:            event.Layout.Column,
				TotalColumns:      event.Layout.TotalColumns,
				WidthPercent:      event.Layout.WidthPercent,
				LeftOffsetPercent: event.Layout.LeftOffsetPercent,
			},
		}
	}

	return &CalendarResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Events: events,
	}
}

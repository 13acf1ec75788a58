package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	getCalendar "github.com/m04kA/SPS-SchedulingService/internal/usecase/get_calendar"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStaffIDs = "некорректный список ID мастеров"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: date (required, YYYY-MM-DD), staffIds (optional, "1,2,3")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	staffIDs, err := ParseStaffIDs(query.Get("staffIds"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid staff IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffIDs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Date:     date,
		StaffIDs: staffIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar - Calendar built successfully: date=%s, events=%d", dateStr, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, response)
}

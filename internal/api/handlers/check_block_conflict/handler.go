package check_block_conflict

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPS-SchedulingService/internal/api/handlers"
	checkBlockConflict "github.com/m04kA/SPS-SchedulingService/internal/usecase/check_block_conflict"
)

const (
	msgInvalidStaffID  = "некорректный ID мастера"
	msgMissingParams   = "параметры date, start и end обязательны"
	msgInvalidDateTime = "некорректный формат даты или времени"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckBlockConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckBlockConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/block-conflicts
// Query params: date (YYYY-MM-DD), start (HH:MM), end (HH:MM) - все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/block-conflicts - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	startStr := query.Get("start")
	endStr := query.Get("end")
	if dateStr == "" || startStr == "" || endStr == "" {
		h.logger.Warn("GET /staff/{id}/block-conflicts - Missing params: staff_id=%d", staffID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(staffID, dateStr, startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/block-conflicts - Invalid date/time: staff_id=%d, error=%v", staffID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkBlockConflict.ErrInvalidInput),
			errors.Is(err, checkBlockConflict.ErrMalformedTime):
			h.logger.Warn("GET /staff/{id}/block-conflicts - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /staff/{id}/block-conflicts - Failed to check conflicts: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/block-conflicts - Conflicts checked: staff_id=%d, date=%s, conflicting=%d",
		staffID, dateStr, result.ConflictingCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}

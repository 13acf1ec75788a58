package create_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPS-SchedulingService/internal/api/handlers"
	createBlock "github.com/m04kA/SPS-SchedulingService/internal/usecase/create_block"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgStaffNotFound      = "мастер не найден"
	msgConflicts          = "блок пересекается с существующими записями; повторите с force для принудительного создания"
	msgInvalidInput       = "некорректные данные блока"
)

type Handler struct {
	useCase CreateBlockUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/{staffId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBlock.ErrConflictingAppointments):
			h.logger.Warn("POST /staff/{id}/blocks - Conflicting appointments: staff_id=%d, date=%s",
				staffID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgConflicts)

		case errors.Is(err, createBlock.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/blocks - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBlock.ErrInvalidInput),
			errors.Is(err, createBlock.ErrMalformedTime):
			h.logger.Warn("POST /staff/{id}/blocks - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/{id}/blocks - Failed to create block: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /staff/{id}/blocks - Block created successfully: id=%d, staff_id=%d, kind=%s",
		result.ID, staffID, result.Kind)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

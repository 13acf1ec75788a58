package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SPS-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/SPS-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgStaffNotFound      = "мастер не найден"
	msgStaffNotWorking    = "мастер не работает в выбранную дату"
	msgOutsideWindow      = "запись выходит за рабочее время мастера"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgInvalidDate        = "некорректная дата записи"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: client_id=%d, date=%s, start=%s",
				req.ClientID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotWorking):
			h.logger.Warn("POST /appointments - Staff not working: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondBadRequest(w, msgStaffNotWorking)

		case errors.Is(err, createAppointment.ErrOutsideOperatingWindow):
			h.logger.Warn("POST /appointments - Outside operating window: client_id=%d, date=%s, start=%s",
				req.ClientID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: client_id=%d, date=%s, start=%s",
				req.ClientID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: client_id=%d, date=%s", req.ClientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput),
			errors.Is(err, createAppointment.ErrMalformedTime):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v",
				req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: id=%d, reference=%s, client_id=%d",
		result.ID, result.Reference, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

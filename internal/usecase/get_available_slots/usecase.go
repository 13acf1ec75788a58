package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SPS-SchedulingService/pkg/ptr"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	staffRepo       StaffRepository
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистое чтение над снимком данных: ничего не пишет, при неизменном
// снимке детерминированно возвращает тот же список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем мастера с недельным шаблоном
	staffMember, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 4. Resolve рабочего окна на дату
	// День недели берётся из самой даты (нумерация time.Weekday),
	// часовой пояс сервера на результат не влияет
	window, open, err := staffMember.OperatingWindow(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: malformed schedule for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: staff schedule: %v", ErrMalformedTime, err)
	}
	if !open {
		uc.logger.Info("GetAvailableSlots: staff id=%d is not working on %s",
			req.StaffID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 5. Собираем занятые интервалы из двух источников
	// Ошибка чтения любого из них фатальна для вызова: частичная
	// availability хуже, чем отказ
	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{
		Date:    req.Date,
		StaffID: ptr.Ptr(req.StaffID),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByStaffAndDate(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	busy, err := collectBusyIntervals(req.StaffID, appointments, blocks)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 6. Читаем минимальное время до записи ровно один раз на вызов.
	// Недоступность настройки НЕ отключает буфер: деградируем к
	// консервативному значению по умолчанию (в минутах) с записью в лог
	leadTime, err := uc.settingsRepo.GetMinLeadTimeMinutes(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: lead time setting unavailable, falling back to %d minutes: %v",
			domain.DefaultMinLeadTimeMinutes, err)
		leadTime = domain.DefaultMinLeadTimeMinutes
	}

	// 7. Проходим сетку и собираем подходящие слоты
	slots, err := generateSlots(window, busy, req.DurationMinutes, req.Date, now, leadTime)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for staff=%d, date=%s",
		len(slots), req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		StaffID:         req.StaffID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		StaffID:         req.StaffID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           []types.TimeString{},
	}
}

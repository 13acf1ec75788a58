package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SPS-SchedulingService/pkg/ptr"
)

// UseCase use case создания записи клиента
//
// Проверка "слот свободен" на read-пути - только advisory: два
// конкурентных запроса могут одновременно увидеть пустое пересечение.
// Настоящий инвариант (никакие две неотменённые записи одного мастера
// не пересекаются) обеспечивается здесь: проверка и вставка выполняются
// в одной сериализуемой транзакции с блокировкой строк дня (FOR UPDATE),
// проигравший получает ErrSlotNotAvailable
type UseCase struct {
	staffRepo       StaffRepository
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, date=%s, time=%s, duration=%d, items=%d",
		req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Интервал записи в минутах от полуночи
	start, err := req.StartTime.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrMalformedTime, err)
	}
	requested := domain.MinuteInterval{Start: start, End: start + req.DurationMinutes}

	// 4. Минимальное время до записи: читаем один раз, при недоступности
	// настройки деградируем к консервативному значению по умолчанию
	leadTime, err := uc.settingsRepo.GetMinLeadTimeMinutes(ctx)
	if err != nil {
		uc.logger.Warn("CreateAppointment: lead time setting unavailable, falling back to %d minutes: %v",
			domain.DefaultMinLeadTimeMinutes, err)
		leadTime = domain.DefaultMinLeadTimeMinutes
	}
	if err := validateLeadTime(req.Date, req.StartTime, now, leadTime); err != nil {
		uc.logger.Warn("CreateAppointment: lead time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 5. Проверка доступности и вставка - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Каждый мастер из позиций должен существовать, работать в
		// эту дату и вмещать интервал записи в своё рабочее окно
		for _, staffID := range staffIDs(req.Items) {
			staffMember, err := uc.staffRepo.GetByID(txCtx, staffID)
			if err != nil {
				if errors.Is(err, staffRepo.ErrStaffNotFound) {
					uc.logger.Warn("CreateAppointment: staff id=%d not found", staffID)
					return ErrStaffNotFound
				}
				uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", staffID, err)
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}

			window, open, err := staffMember.OperatingWindow(req.Date)
			if err != nil {
				return fmt.Errorf("%w: staff id=%d schedule: %v", ErrMalformedTime, staffID, err)
			}
			if !open {
				uc.logger.Warn("CreateAppointment: staff id=%d is not working on %s",
					staffID, req.Date.Format(domain.DateFormat))
				return ErrStaffNotWorking
			}
			if requested.Start < window.Start || requested.End > window.End {
				uc.logger.Warn("CreateAppointment: interval %d-%d outside window %d-%d for staff id=%d",
					requested.Start, requested.End, window.Start, window.End, staffID)
				return ErrOutsideOperatingWindow
			}

			// 5.2. Записи мастера на день, с блокировкой FOR UPDATE
			appointments, err := uc.appointmentRepo.GetByDate(txCtx, domain.DayAppointmentsFilter{
				Date:    req.Date,
				StaffID: ptr.Ptr(staffID),
			})
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			blocks, err := uc.blockRepo.GetByStaffAndDate(txCtx, staffID, req.Date)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to get blocks: %v", err)
				return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
			}

			if err := uc.checkInterval(staffID, requested, appointments, blocks); err != nil {
				return err
			}
		}

		// 5.3. Создаем запись с денормализацией названий и цен услуг
		appt := &domain.Appointment{
			Reference:       uuid.NewString(),
			ClientID:        req.ClientID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}
		for _, item := range req.Items {
			appt.Items = append(appt.Items, domain.AppointmentItem{
				StaffID:         item.StaffID,
				ServiceName:     item.ServiceName,
				ServicePrice:    item.ServicePrice,
				DurationMinutes: item.DurationMinutes,
			})
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d reference=%s", result.ID, result.Reference)

	endTime, err := result.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInternal, err)
	}

	items := make([]ItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, ItemResponse{
			ID:              item.ID,
			StaffID:         item.StaffID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
		})
	}

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		ClientID:        result.ClientID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Items:           items,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// checkInterval проверяет, что интервал не пересекает ни записи,
// ни blocking-блоки мастера (с учётом available-блоков)
func (uc *UseCase) checkInterval(
	staffID int64,
	requested domain.MinuteInterval,
	appointments []*domain.Appointment,
	blocks []*domain.Block,
) error {
	for _, appt := range appointments {
		if !appt.OccupiesTime() || !appt.References(staffID) {
			continue
		}
		interval, err := appt.Interval()
		if err != nil {
			return fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, appt.ID, err)
		}
		if requested.Overlaps(interval) {
			uc.logger.Warn("CreateAppointment: interval overlaps appointment id=%d for staff id=%d", appt.ID, staffID)
			return ErrSlotNotAvailable
		}
	}

	blocking := make([]domain.MinuteInterval, 0, len(blocks))
	available := make([]domain.MinuteInterval, 0)
	for _, blk := range blocks {
		interval, err := blk.Interval()
		if err != nil {
			return fmt.Errorf("%w: block id=%d: %v", ErrMalformedTime, blk.ID, err)
		}
		if !interval.IsValid() {
			continue
		}
		if blk.IsAvailable() {
			available = append(available, interval)
		} else {
			blocking = append(blocking, interval)
		}
	}

	for _, interval := range domain.SubtractAll(blocking, available) {
		if requested.Overlaps(interval) {
			uc.logger.Warn("CreateAppointment: interval overlaps block for staff id=%d", staffID)
			return ErrSlotNotAvailable
		}
	}

	return nil
}

// staffIDs возвращает уникальные ID мастеров из позиций запроса
func staffIDs(items []ItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.StaffID]; ok {
			continue
		}
		seen[item.StaffID] = struct{}{}
		ids = append(ids, item.StaffID)
	}
	return ids
}

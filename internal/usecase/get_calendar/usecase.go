package get_calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	logger          Logger
}

func NewUseCase(appointmentRepo AppointmentRepository, blockRepo BlockRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		logger:          logger,
	}
}

// Execute собирает события календаря на день и рассчитывает их раскладку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	for _, staffID := range req.StaffIDs {
		if staffID <= 0 {
			return nil, fmt.Errorf("%w: staff id must be positive, got %d", ErrInvalidInput, staffID)
		}
	}

	// 2. Записи и блокировки на дату
	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("Usecase.GetCalendar - failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDate(ctx, req.Date, req.StaffIDs)
	if err != nil {
		uc.logger.Error("Usecase.GetCalendar - failed to fetch blocks: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch blocks: %v", ErrInternal, err)
	}

	// 3. Проекция в события календаря
	events, err := uc.buildEvents(appointments, blocks, req.StaffIDs)
	if err != nil {
		return nil, err
	}

	// 4. Раскладка по колонкам
	laidOut := ComputeLayout(events)

	uc.logger.Debug("Usecase.GetCalendar - date=%s events=%d", req.Date.Format(domain.DateFormat), len(laidOut))

	return &Response{
		Date:   req.Date,
		Events: laidOut,
	}, nil
}

// buildEvents проецирует записи и блокировки в плоский список событий.
// Время событий - десятичные часы (09:30 -> 9.5); некорректное время в
// хранилище - ошибка, движок раскладки таких событий не видит
func (uc *UseCase) buildEvents(appointments []*domain.Appointment, blocks []*domain.Block, staffIDs []int64) ([]domain.CalendarEvent, error) {
	events := make([]domain.CalendarEvent, 0, len(appointments)+len(blocks))

	for _, appointment := range appointments {
		if len(staffIDs) > 0 && !referencesAny(appointment, staffIDs) {
			continue
		}

		start, err := appointment.StartTime.Hours()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment %d: %v", ErrMalformedTime, appointment.ID, err)
		}
		endTime, err := appointment.EndTime()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment %d: %v", ErrMalformedTime, appointment.ID, err)
		}
		end, err := endTime.Hours()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment %d: %v", ErrMalformedTime, appointment.ID, err)
		}

		events = append(events, domain.CalendarEvent{
			ID:       fmt.Sprintf("appointment-%d", appointment.ID),
			Type:     domain.EventTypeAppointment,
			StaffIDs: appointment.StaffIDs(),
			Title:    appointmentTitle(appointment),
			Start:    start,
			End:      end,
		})
	}

	for _, block := range blocks {
		start, err := block.StartTime.Hours()
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrMalformedTime, block.ID, err)
		}
		end, err := block.EndTime.Hours()
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrMalformedTime, block.ID, err)
		}

		events = append(events, domain.CalendarEvent{
			ID:       fmt.Sprintf("block-%d", block.ID),
			Type:     domain.EventTypeBlock,
			Kind:     block.Kind,
			StaffIDs: []int64{block.StaffID},
			Title:    blockTitle(block),
			Start:    start,
			End:      end,
		})
	}

	return events, nil
}

func referencesAny(appointment *domain.Appointment, staffIDs []int64) bool {
	for _, id := range staffIDs {
		if appointment.References(id) {
			return true
		}
	}
	return false
}

func appointmentTitle(appointment *domain.Appointment) string {
	names := make([]string, 0, len(appointment.Items))
	for _, item := range appointment.Items {
		names = append(names, item.ServiceName)
	}
	return strings.Join(names, ", ")
}

func blockTitle(block *domain.Block) string {
	if block.Reason != "" {
		return block.Reason
	}
	if block.IsAvailable() {
		return "Дополнительное время"
	}
	return "Недоступен"
}

package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// collectBusyIntervals собирает занятые интервалы мастера на день
// из двух независимых источников: записей и блоков.
//
// Правила:
//   - записи в любом статусе, кроме отменённого, занимают время целиком
//   - blocking-блоки занимают время так же, как записи
//   - available-блоки НЕ занимают время: они вычитаются из blocking-блоков
//     и тем самым заново открывают закрытое ими время; время записей они
//     не открывают
//
// Некорректное время (не HH:MM) в любом источнике - ошибка ErrMalformedTime:
// один испорченный интервал иначе ломал бы каждую последующую проверку
// пересечения на этот день
func collectBusyIntervals(
	staffID int64,
	appointments []*domain.Appointment,
	blocks []*domain.Block,
) ([]domain.MinuteInterval, error) {
	busy := make([]domain.MinuteInterval, 0, len(appointments)+len(blocks))

	for _, appt := range appointments {
		if !appt.OccupiesTime() {
			continue
		}
		if !appt.References(staffID) {
			continue
		}

		interval, err := appt.Interval()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, appt.ID, err)
		}
		busy = append(busy, interval)
	}

	blocking := make([]domain.MinuteInterval, 0, len(blocks))
	available := make([]domain.MinuteInterval, 0)

	for _, blk := range blocks {
		interval, err := blk.Interval()
		if err != nil {
			return nil, fmt.Errorf("%w: block id=%d: %v", ErrMalformedTime, blk.ID, err)
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

	// available-блоки открывают время, закрытое blocking-блоками
	blocking = domain.SubtractAll(blocking, available)

	busy = append(busy, blocking...)
	domain.SortIntervals(busy)

	return busy, nil
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// generateSlots проходит сетку с фиксированным шагом по рабочему окну мастера
// и возвращает каждое время начала, в которое услуга запрошенной длительности
// помещается целиком и не пересекает ни один занятый интервал.
//
// Кандидат c отбрасывается, если:
//   - c + duration выходит за конец рабочего окна
//   - дата - сегодня и c наступает раньше, чем now + leadTime
//   - интервал [c, c+duration) пересекает занятый интервал
//     (полуоткрытый тест: candStart < busyEnd && candEnd > busyStart;
//     граничащие интервалы пересечением не считаются)
//
// Вся арифметика ведётся в минутах от полуночи, результат конвертируется
// в HH:MM только на выходе
func generateSlots(
	window domain.MinuteInterval,
	busy []domain.MinuteInterval,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
	leadTimeMinutes int,
) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	// Прошедшие даты не имеют свободных слотов
	if isDateInPast(requestDate, now) {
		return slots, nil
	}

	// Минимально допустимое время начала действует только для сегодняшней даты
	minStart := -1
	if isSameDay(requestDate, now) {
		minStart = now.Hour()*60 + now.Minute() + leadTimeMinutes
	}

	for candidate := window.Start; candidate+durationMinutes <= window.End; candidate += domain.SlotGridMinutes {
		if candidate < minStart {
			continue
		}

		candidateInterval := domain.MinuteInterval{Start: candidate, End: candidate + durationMinutes}
		if overlapsAny(candidateInterval, busy) {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(candidate)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним занятым интервалом
func overlapsAny(candidate domain.MinuteInterval, busy []domain.MinuteInterval) bool {
	for _, interval := range busy {
		if candidate.Overlaps(interval) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

package get_calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

func appointmentEvent(id string, staffID int64, start, end float64) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:       id,
		Type:     domain.EventTypeAppointment,
		StaffIDs: []int64{staffID},
		Start:    start,
		End:      end,
	}
}

func blockEvent(id string, kind domain.BlockKind, staffID int64, start, end float64) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:       id,
		Type:     domain.EventTypeBlock,
		Kind:     kind,
		StaffIDs: []int64{staffID},
		Start:    start,
		End:      end,
	}
}

func layoutByID(t *testing.T, events []domain.CalendarEvent, id string) domain.EventLayout {
	t.Helper()
	for _, e := range events {
		if e.ID == id {
			return e.Layout
		}
	}
	t.Fatalf("event %s not found in layout result", id)
	return domain.EventLayout{}
}

func TestComputeLayout_SingleEventGetsFullWidth(t *testing.T) {
	result := ComputeLayout([]domain.CalendarEvent{
		appointmentEvent("a", 1, 9, 10),
	})

	require.Len(t, result, 1)
	assert.Equal(t, domain.EventLayout{
		Column:            0,
		TotalColumns:      1,
		WidthPercent:      100,
		LeftOffsetPercent: 0,
	}, result[0].Layout)
}

func TestComputeLayout_ChainOfThreeSharesTwoColumns(t *testing.T) {
	// A и C не пересекаются между собой, но оба пересекают B:
	// один кластер, две колонки, A и C делят колонку 0
	result := ComputeLayout([]domain.CalendarEvent{
		appointmentEvent("a", 1, 9, 10),
		appointmentEvent("b", 1, 9.5, 10.5),
		appointmentEvent("c", 1, 10.25, 11),
	})

	a := layoutByID(t, result, "a")
	b := layoutByID(t, result, "b")
	c := layoutByID(t, result, "c")

	assert.Equal(t, 2, a.TotalColumns)
	assert.Equal(t, 2, b.TotalColumns)
	assert.Equal(t, 2, c.TotalColumns)

	assert.Equal(t, 0, a.Column)
	assert.Equal(t, 1, b.Column)
	assert.Equal(t, 0, c.Column)

	assert.InDelta(t, 50, a.WidthPercent, 0.001)
	assert.InDelta(t, 0, a.LeftOffsetPercent, 0.001)
	assert.InDelta(t, 50, b.LeftOffsetPercent, 0.001)
	assert.InDelta(t, 0, c.LeftOffsetPercent, 0.001)
}

func TestComputeLayout_DifferentStaffNeverShareCluster(t *testing.T) {
	result := ComputeLayout([]domain.CalendarEvent{
		appointmentEvent("a", 1, 9, 10),
		appointmentEvent("b", 2, 9, 10),
	})

	assert.Equal(t, 1, layoutByID(t, result, "a").TotalColumns)
	assert.Equal(t, 1, layoutByID(t, result, "b").TotalColumns)
}

func TestComputeLayout_AdjacentEventsDoNotCollide(t *testing.T) {
	// Полуоткрытые интервалы: конец одного события — начало другого
	result := ComputeLayout([]domain.CalendarEvent{
		appointmentEvent("a", 1, 9, 10),
		appointmentEvent("b", 1, 10, 11),
	})

	assert.Equal(t, 1, layoutByID(t, result, "a").TotalColumns)
	assert.Equal(t, 1, layoutByID(t, result, "b").TotalColumns)
}

func TestComputeLayout_AvailableBlockSuppressesBlockingBlock(t *testing.T) {
	result := ComputeLayout([]domain.CalendarEvent{
		blockEvent("blocking", domain.BlockKindBlocking, 1, 10, 12),
		blockEvent("available", domain.BlockKindAvailable, 1, 11, 11.5),
	})

	// blocking-блок подавлен целиком, а не обрезан
	require.Len(t, result, 1)
	assert.Equal(t, "available", result[0].ID)
}

func TestComputeLayout_SuppressionRequiresSameStaff(t *testing.T) {
	result := ComputeLayout([]domain.CalendarEvent{
		blockEvent("blocking", domain.BlockKindBlocking, 1, 10, 12),
		blockEvent("available", domain.BlockKindAvailable, 2, 11, 11.5),
	})

	assert.Len(t, result, 2)
}

func TestComputeLayout_AppointmentAndAvailableBlockStack(t *testing.T) {
	// Запись поверх available-блока не разъезжается по колонкам:
	// оба события рендерятся на полную ширину
	result := ComputeLayout([]domain.CalendarEvent{
		appointmentEvent("appt", 1, 10, 10.5),
		blockEvent("available", domain.BlockKindAvailable, 1, 10, 11),
	})

	require.Len(t, result, 2)
	assert.Equal(t, 1, layoutByID(t, result, "appt").TotalColumns)
	assert.Equal(t, 1, layoutByID(t, result, "available").TotalColumns)
}

func TestComputeLayout_AppointmentAndBlockingBlockSplit(t *testing.T) {
	result := ComputeLayout([]domain.CalendarEvent{
		appointmentEvent("appt", 1, 10, 11),
		blockEvent("blocking", domain.BlockKindBlocking, 1, 10.5, 11.5),
	})

	assert.Equal(t, 2, layoutByID(t, result, "appt").TotalColumns)
	assert.Equal(t, 2, layoutByID(t, result, "blocking").TotalColumns)
}

func TestComputeLayout_DoesNotMutateInput(t *testing.T) {
	input := []domain.CalendarEvent{
		appointmentEvent("a", 1, 9, 10),
		appointmentEvent("b", 1, 9.5, 10.5),
	}

	_ = ComputeLayout(input)

	for _, e := range input {
		assert.Equal(t, domain.EventLayout{}, e.Layout)
	}
}

func TestComputeLayout_SharedStaffItemLinksClusters(t *testing.T) {
	// Событие с двумя мастерами сталкивается с событиями каждого из них
	multi := domain.CalendarEvent{
		ID:       "multi",
		Type:     domain.EventTypeAppointment,
		StaffIDs: []int64{1, 2},
		Start:    10,
		End:      11,
	}
	result := ComputeLayout([]domain.CalendarEvent{
		multi,
		appointmentEvent("a", 1, 10, 11),
		appointmentEvent("b", 2, 10, 11),
	})

	assert.Equal(t, 3, layoutByID(t, result, "multi").TotalColumns)
	assert.Equal(t, 3, layoutByID(t, result, "a").TotalColumns)
	assert.Equal(t, 3, layoutByID(t, result, "b").TotalColumns)
}

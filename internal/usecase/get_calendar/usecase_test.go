package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, s.err
}

type stubBlockRepo struct {
	blocks []*domain.Block
	err    error
}

func (s *stubBlockRepo) GetByDate(_ context.Context, _ time.Time, _ []int64) ([]*domain.Block, error) {
	return s.blocks, s.err
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

var calendarDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestExecute_ProjectsAppointmentsAndBlocks(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			{
				ID:              10,
				Date:            calendarDate,
				StartTime:       "09:30",
				DurationMinutes: 45,
				Status:          domain.StatusConfirmed,
				Items: []domain.AppointmentItem{
					{StaffID: 1, ServiceName: "Стрижка"},
					{StaffID: 1, ServiceName: "Укладка"},
				},
			},
		}},
		&stubBlockRepo{blocks: []*domain.Block{
			{ID: 3, StaffID: 2, Date: calendarDate, StartTime: "12:00", EndTime: "13:00", Kind: domain.BlockKindBlocking, Reason: "Обед"},
			{ID: 4, StaffID: 2, Date: calendarDate, StartTime: "18:00", EndTime: "19:00", Kind: domain.BlockKindAvailable},
		}},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: calendarDate})
	require.NoError(t, err)
	require.Len(t, resp.Events, 3)

	byID := make(map[string]domain.CalendarEvent, len(resp.Events))
	for _, e := range resp.Events {
		byID[e.ID] = e
	}

	appt := byID["appointment-10"]
	assert.Equal(t, domain.EventTypeAppointment, appt.Type)
	assert.Equal(t, []int64{1}, appt.StaffIDs)
	assert.Equal(t, "Стрижка, Укладка", appt.Title)
	assert.InDelta(t, 9.5, appt.Start, 0.001)
	assert.InDelta(t, 10.25, appt.End, 0.001)

	lunch := byID["block-3"]
	assert.Equal(t, "Обед", lunch.Title)
	assert.Equal(t, []int64{2}, lunch.StaffIDs)

	// Блок без причины получает заголовок по умолчанию
	extra := byID["block-4"]
	assert.Equal(t, "Дополнительное время", extra.Title)
}

func TestExecute_StaffFilterAppliesToAppointments(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 10, StartTime: "10:00", DurationMinutes: 30, Items: []domain.AppointmentItem{{StaffID: 1}}},
			{ID: 11, StartTime: "10:00", DurationMinutes: 30, Items: []domain.AppointmentItem{{StaffID: 2}}},
		}},
		&stubBlockRepo{},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: calendarDate, StaffIDs: []int64{1}})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "appointment-10", resp.Events[0].ID)
}

func TestExecute_OverlappingEventsGetLayout(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 10, StartTime: "10:00", DurationMinutes: 60, Items: []domain.AppointmentItem{{StaffID: 1}}},
			{ID: 11, StartTime: "10:30", DurationMinutes: 60, Items: []domain.AppointmentItem{{StaffID: 1}}},
		}},
		&stubBlockRepo{},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: calendarDate})
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	for _, e := range resp.Events {
		assert.Equal(t, 2, e.Layout.TotalColumns)
		assert.InDelta(t, 50, e.Layout.WidthPercent, 0.001)
	}
}

func TestExecute_MalformedStoredTimeIsError(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 10, StartTime: "garbage", DurationMinutes: 30, Items: []domain.AppointmentItem{{StaffID: 1}}},
		}},
		&stubBlockRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: calendarDate})
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubBlockRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: calendarDate, StaffIDs: []int64{0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorIsFatal(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{err: errors.New("connection refused")},
		&stubBlockRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: calendarDate})
	assert.ErrorIs(t, err, ErrInternal)
}

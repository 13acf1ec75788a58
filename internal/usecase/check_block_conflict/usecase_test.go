package check_block_conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func testAppointment(id int64, start types.TimeString, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Reference:       "ref-1",
		ClientID:        42,
		Date:            testDate,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          status,
		Items: []domain.AppointmentItem{
			{StaffID: 1, ServiceName: "Маникюр", DurationMinutes: durationMinutes},
		},
	}
}

func TestExecute_ReportsOverlappingAppointments(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{appointments: []*domain.Appointment{
		testAppointment(10, "10:00", 60, domain.StatusConfirmed),
		testAppointment(11, "14:00", 30, domain.StatusPending),
	}}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "10:30", End: "11:30",
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.ConflictingCount)
	conflict := resp.Conflicts[0]
	assert.Equal(t, int64(10), conflict.AppointmentID)
	assert.Equal(t, "ref-1", conflict.Reference)
	assert.Equal(t, int64(42), conflict.ClientID)
	assert.Equal(t, types.TimeString("10:00"), conflict.StartTime)
	assert.Equal(t, types.TimeString("11:00"), conflict.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), conflict.Status)
}

func TestExecute_CancelledAppointmentsAreIgnored(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{appointments: []*domain.Appointment{
		testAppointment(10, "10:00", 60, domain.StatusCancelled),
	}}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "10:00", End: "11:00",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ConflictingCount)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_AdjacentIntervalsAreNotConflicts(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{appointments: []*domain.Appointment{
		testAppointment(10, "10:00", 60, domain.StatusConfirmed),
	}}, noopLogger{})

	// Кандидат начинается ровно в конце записи
	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "11:00", End: "12:00",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ConflictingCount)

	// И наоборот: кандидат заканчивается ровно в начале записи
	resp, err = uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "09:00", End: "10:00",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ConflictingCount)
}

func TestExecute_OtherStaffAppointmentsAreIgnored(t *testing.T) {
	other := testAppointment(10, "10:00", 60, domain.StatusConfirmed)
	other.Items[0].StaffID = 2

	uc := NewUseCase(&stubAppointmentRepo{appointments: []*domain.Appointment{other}}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "10:00", End: "11:00",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ConflictingCount)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: 0, Date: testDate, Start: "10:00", End: "11:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "11:00", End: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "25:00", End: "26:00",
	})
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestExecute_RepositoryErrorIsFatal(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{err: errors.New("connection refused")}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: testDate, Start: "10:00", End: "11:00",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

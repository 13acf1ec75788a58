package create_block

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffStorage "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
)

type stubStaffRepo struct {
	exists bool
}

func (s *stubStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	if !s.exists {
		return nil, staffStorage.ErrStaffNotFound
	}
	return &domain.Staff{ID: id}, nil
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

type stubBlockRepo struct {
	created *domain.Block
}

func (s *stubBlockRepo) Create(_ context.Context, blk *domain.Block) (*domain.Block, error) {
	created := *blk
	created.ID = 55
	created.CreatedAt = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s.created = &created
	return &created, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var blockDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func confirmedAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Reference:       "ref",
		Date:            blockDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		Items:           []domain.AppointmentItem{{StaffID: 1}},
	}
}

func newTestUseCase(appts []*domain.Appointment) (*UseCase, *stubBlockRepo) {
	blockRepo := &stubBlockRepo{}
	uc := NewUseCase(&stubStaffRepo{exists: true}, &stubAppointmentRepo{appointments: appts}, blockRepo, noopLogger{})
	return uc, blockRepo
}

func TestExecute_CreatesBlockingBlock(t *testing.T) {
	uc, blockRepo := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: blockDate, StartTime: "12:00", EndTime: "13:00",
		Kind: domain.BlockKindBlocking, Reason: "Обед",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.ID)
	assert.Equal(t, domain.BlockKindBlocking, resp.Kind)
	assert.Empty(t, resp.Conflicts)
	require.NotNil(t, blockRepo.created)
	assert.Equal(t, "Обед", blockRepo.created.Reason)
}

func TestExecute_BlockingOverAppointmentRejectedWithoutForce(t *testing.T) {
	uc, blockRepo := newTestUseCase([]*domain.Appointment{confirmedAppointment(10)})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: blockDate, StartTime: "10:30", EndTime: "11:30",
		Kind: domain.BlockKindBlocking,
	})
	assert.ErrorIs(t, err, ErrConflictingAppointments)
	assert.Nil(t, blockRepo.created)
}

func TestExecute_ForceCreatesOverAppointmentsAndReportsThem(t *testing.T) {
	uc, _ := newTestUseCase([]*domain.Appointment{confirmedAppointment(10)})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: blockDate, StartTime: "10:30", EndTime: "11:30",
		Kind: domain.BlockKindBlocking, Force: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(10), resp.Conflicts[0].AppointmentID)
	assert.Equal(t, "ref", resp.Conflicts[0].Reference)
}

func TestExecute_AvailableBlockSkipsConflictCheck(t *testing.T) {
	// available-блок поверх записи создаётся без force
	uc, _ := newTestUseCase([]*domain.Appointment{confirmedAppointment(10)})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: blockDate, StartTime: "10:00", EndTime: "11:00",
		Kind: domain.BlockKindAvailable,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_CancelledAppointmentsAreNotConflicts(t *testing.T) {
	cancelled := confirmedAppointment(10)
	cancelled.Status = domain.StatusCancelled
	uc, _ := newTestUseCase([]*domain.Appointment{cancelled})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: 1, Date: blockDate, StartTime: "10:00", EndTime: "11:00",
		Kind: domain.BlockKindBlocking,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_UnknownStaff(t *testing.T) {
	uc := NewUseCase(&stubStaffRepo{exists: false}, &stubAppointmentRepo{}, &stubBlockRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: 7, Date: blockDate, StartTime: "10:00", EndTime: "11:00",
		Kind: domain.BlockKindBlocking,
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, _ := newTestUseCase(nil)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "start after end",
			req:     &Request{StaffID: 1, Date: blockDate, StartTime: "12:00", EndTime: "11:00", Kind: domain.BlockKindBlocking},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown kind",
			req:     &Request{StaffID: 1, Date: blockDate, StartTime: "10:00", EndTime: "11:00", Kind: "lunch"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed time",
			req:     &Request{StaffID: 1, Date: blockDate, StartTime: "10:00:00", EndTime: "11:00", Kind: domain.BlockKindBlocking},
			wantErr: ErrMalformedTime,
		},
		{
			name: "reason too long",
			req: &Request{
				StaffID: 1, Date: blockDate, StartTime: "10:00", EndTime: "11:00",
				Kind: domain.BlockKindBlocking, Reason: strings.Repeat("x", domain.MaxReasonLength+1),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

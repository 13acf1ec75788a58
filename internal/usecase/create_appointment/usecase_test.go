package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffStorage "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Моки зависимостей

type stubStaffRepo struct {
	byID map[int64]*domain.Staff
}

func (s *stubStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	staff, ok := s.byID[id]
	if !ok {
		return nil, staffStorage.ErrStaffNotFound
	}
	return staff, nil
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	createErr    error
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *appt
	created.ID = 99
	for i := range created.Items {
		created.Items[i].ID = int64(i + 1)
		created.Items[i].AppointmentID = created.ID
	}
	created.CreatedAt = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s.created = &created
	return &created, nil
}

type stubBlockRepo struct {
	blocks []*domain.Block
}

func (s *stubBlockRepo) GetByStaffAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Block, error) {
	return s.blocks, nil
}

type stubSettingsRepo struct {
	leadTimeMinutes int
	err             error
}

func (s *stubSettingsRepo) GetMinLeadTimeMinutes(_ context.Context) (int, error) {
	return s.leadTimeMinutes, s.err
}

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Фикстуры

var (
	bookingDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // понедельник
	nowBefore   = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
)

func workingStaff(id int64) *domain.Staff {
	return &domain.Staff{
		ID: id,
		Schedule: domain.WeeklySchedule{
			Monday: domain.DaySchedule{Enabled: true, Start: "09:00", End: "18:00"},
		},
	}
}

type fixture struct {
	staffRepo    *stubStaffRepo
	apptRepo     *stubAppointmentRepo
	blockRepo    *stubBlockRepo
	settingsRepo *stubSettingsRepo
	txManager    *passthroughTxManager
	uc           *UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		staffRepo:    &stubStaffRepo{byID: map[int64]*domain.Staff{1: workingStaff(1)}},
		apptRepo:     &stubAppointmentRepo{},
		blockRepo:    &stubBlockRepo{},
		settingsRepo: &stubSettingsRepo{leadTimeMinutes: 30},
		txManager:    &passthroughTxManager{},
	}
	f.uc = NewUseCase(f.staffRepo, f.apptRepo, f.blockRepo, f.settingsRepo, f.txManager, noopLogger{})
	f.uc.timeProvider = &fixedClock{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:        42,
		Date:            bookingDate,
		StartTime:       "14:00",
		DurationMinutes: 60,
		Items: []ItemRequest{
			{StaffID: 1, ServiceName: "Стрижка", ServicePrice: 1500, DurationMinutes: 60},
		},
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	f := newFixture(nowBefore)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(99), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Стрижка", resp.Items[0].ServiceName)

	// Проверка и вставка прошли внутри транзакции
	assert.Equal(t, 1, f.txManager.calls)
	require.NotNil(t, f.apptRepo.created)
	assert.Equal(t, domain.StatusConfirmed, f.apptRepo.created.Status)
}

func TestExecute_OverlappingAppointmentLosesSlot(t *testing.T) {
	f := newFixture(nowBefore)
	f.apptRepo.appointments = []*domain.Appointment{
		{
			ID:              5,
			Date:            bookingDate,
			StartTime:       "14:30",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
			Items:           []domain.AppointmentItem{{StaffID: 1}},
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.apptRepo.created)
}

func TestExecute_BlockingBlockDeniesSlot(t *testing.T) {
	f := newFixture(nowBefore)
	f.blockRepo.blocks = []*domain.Block{
		{ID: 7, StaffID: 1, Date: bookingDate, StartTime: "14:00", EndTime: "15:00", Kind: domain.BlockKindBlocking},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AvailableBlockReopensBlockedSlot(t *testing.T) {
	f := newFixture(nowBefore)
	f.blockRepo.blocks = []*domain.Block{
		{ID: 7, StaffID: 1, Date: bookingDate, StartTime: "13:00", EndTime: "16:00", Kind: domain.BlockKindBlocking},
		{ID: 8, StaffID: 1, Date: bookingDate, StartTime: "14:00", EndTime: "15:00", Kind: domain.BlockKindAvailable},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.ID)
}

func TestExecute_OutsideOperatingWindow(t *testing.T) {
	f := newFixture(nowBefore)
	req := validRequest()
	req.StartTime = "17:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingWindow)
}

func TestExecute_StaffNotWorkingOnDate(t *testing.T) {
	f := newFixture(nowBefore)
	req := validRequest()
	req.Date = bookingDate.AddDate(0, 0, 1) // вторник выключен в шаблоне

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotWorking)
}

func TestExecute_UnknownStaff(t *testing.T) {
	f := newFixture(nowBefore)
	req := validRequest()
	req.Items[0].StaffID = 33

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	f := newFixture(now)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
	// До транзакции дело не дошло
	assert.Zero(t, f.txManager.calls)
}

func TestExecute_LeadTimeAppliesOnlyToday(t *testing.T) {
	// now = понедельник 13:45, lead time 30: запись на 14:00 сегодня
	// нарушает буфер
	now := time.Date(2026, 8, 31, 13, 45, 0, 0, time.UTC)
	f := newFixture(now)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Ровно now + lead допустимо
	f = newFixture(time.Date(2026, 8, 31, 13, 30, 0, 0, time.UTC))
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SettingsFailureFallsBackToDefault(t *testing.T) {
	now := time.Date(2026, 8, 31, 13, 45, 0, 0, time.UTC)
	f := newFixture(now)
	f.settingsRepo.err = errors.New("connection refused")

	// Дефолтные 30 минут продолжают действовать
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_MultiStaffItemsCheckEveryStaff(t *testing.T) {
	f := newFixture(nowBefore)
	f.staffRepo.byID[2] = workingStaff(2)
	req := validRequest()
	req.Items = append(req.Items, ItemRequest{
		StaffID: 2, ServiceName: "Маникюр", ServicePrice: 2000, DurationMinutes: 60,
	})

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Items[1].StaffID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(nowBefore)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "client id required",
			mutate:  func(r *Request) { r.ClientID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "items required",
			mutate:  func(r *Request) { r.Items = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration too long",
			mutate:  func(r *Request) { r.DurationMinutes = domain.MaxServiceDurationMinutes + 1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration too short",
			mutate:  func(r *Request) { r.DurationMinutes = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			mutate:  func(r *Request) { r.StartTime = "25:00" },
			wantErr: ErrMalformedTime,
		},
		{
			name:    "item without service name",
			mutate:  func(r *Request) { r.Items[0].ServiceName = "" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CreateFailureIsInternal(t *testing.T) {
	f := newFixture(nowBefore)
	f.apptRepo.createErr = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

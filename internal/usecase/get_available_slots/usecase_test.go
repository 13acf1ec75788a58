package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Моки хранилищ

type stubStaffRepo struct {
	staff *domain.Staff
	err   error
}

func (s *stubStaffRepo) GetByID(_ context.Context, _ int64) (*domain.Staff, error) {
	return s.staff, s.err
}

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

func (s *stubBlockRepo) GetByStaffAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Block, error) {
	return s.blocks, s.err
}

type stubSettingsRepo struct {
	leadTimeMinutes int
	err             error
}

func (s *stubSettingsRepo) GetMinLeadTimeMinutes(_ context.Context) (int, error) {
	return s.leadTimeMinutes, s.err
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

// Общие фикстуры: мастер работает по понедельникам 09:00-18:00

var (
	monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // понедельник
	sunday = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
)

func workingStaff() *domain.Staff {
	return &domain.Staff{
		ID:   1,
		Name: "Анна",
		Schedule: domain.WeeklySchedule{
			Monday: domain.DaySchedule{Enabled: true, Start: "09:00", End: "18:00"},
		},
	}
}

func newTestUseCase(
	staff *stubStaffRepo,
	appts *stubAppointmentRepo,
	blocks *stubBlockRepo,
	settings *stubSettingsRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(staff, appts, blocks, settings, noopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func appointmentAt(id int64, staffID int64, start types.TimeString, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Reference:       "ref",
		ClientID:        100,
		Date:            monday,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
		Items: []domain.AppointmentItem{
			{StaffID: staffID, ServiceName: "Стрижка", DurationMinutes: durationMinutes},
		},
	}
}

func blockAt(id int64, kind domain.BlockKind, start, end types.TimeString) *domain.Block {
	return &domain.Block{
		ID:        id,
		StaffID:   1,
		Date:      monday,
		StartTime: start,
		EndTime:   end,
		Kind:      kind,
	}
}

// now за два дня до запрашиваемой даты: лимит lead time не действует
var dayBefore = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestExecute_FullDayWithoutCommitments(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	// Окно 09:00-18:00, шаг 30 минут, услуга 30 минут: 18 слотов
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[17])
}

func TestExecute_AppointmentRemovesOverlappingSlots(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			appointmentAt(10, 1, "14:00", 30),
		}},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 17)
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
	// Граничащие слоты остаются: полуоткрытые интервалы
	assert.Contains(t, resp.Slots, types.TimeString("13:30"))
	assert.Contains(t, resp.Slots, types.TimeString("14:30"))
}

func TestExecute_LongServiceMustFitEntirely(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			appointmentAt(10, 1, "14:00", 30),
		}},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 90})
	require.NoError(t, err)

	// 90-минутная услуга не влезает, если пересекает запись 14:00-14:30:
	// выпадают кандидаты 13:00, 13:30 и 14:00; 12:30 заканчивается ровно
	// в 14:00 и остаётся
	assert.Contains(t, resp.Slots, types.TimeString("12:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("13:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("13:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
	assert.Contains(t, resp.Slots, types.TimeString("12:00"))
	assert.Contains(t, resp.Slots, types.TimeString("14:30"))
	// Последний кандидат, влезающий до 18:00 целиком
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[len(resp.Slots)-1])
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	cancelled := appointmentAt(10, 1, "14:00", 30)
	cancelled.Status = domain.StatusCancelled

	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{appointments: []*domain.Appointment{cancelled}},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("14:00"))
}

func TestExecute_DisabledWeekdayReturnsEmptyWithoutError(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	// Воскресенье выключено в шаблоне: пустой список, не ошибка
	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: sunday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AvailableBlockReopensBlockingBlock(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{blocks: []*domain.Block{
			blockAt(1, domain.BlockKindBlocking, "10:00", "12:00"),
			blockAt(2, domain.BlockKindAvailable, "11:00", "11:30"),
		}},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	// Открылось ровно вычтенное окно
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
	// Остальная часть blocking-блока закрыта
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("11:30"))
	assert.Contains(t, resp.Slots, types.TimeString("12:00"))
}

func TestExecute_AvailableBlockDoesNotReopenAppointments(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			appointmentAt(10, 1, "10:00", 30),
		}},
		&stubBlockRepo{blocks: []*domain.Block{
			blockAt(2, domain.BlockKindAvailable, "10:00", "10:30"),
		}},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_LeadTimeAppliesOnlyToday(t *testing.T) {
	// now = понедельник 10:05, lead time 30 минут
	now := time.Date(2026, 8, 31, 10, 5, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	// Кандидаты раньше 10:35 отброшены, первый допустимый - 11:00
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0])
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))

	// На будущую дату лимит не действует
	nextMonday := monday.AddDate(0, 0, 7)
	resp, err = uc.Execute(context.Background(), &Request{StaffID: 1, Date: nextMonday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
}

func TestExecute_LeadTimeBoundaryIsInclusive(t *testing.T) {
	// now = 10:00, lead 30: кандидат ровно 10:30 допустим
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[0])
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SettingsFailureFallsBackToDefault(t *testing.T) {
	// now = 09:40, настройка недоступна: действует дефолт в 30 минут
	now := time.Date(2026, 8, 31, 9, 40, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{err: errors.New("connection refused")},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	// 09:40 + 30 = 10:10, первый кандидат на сетке - 10:30
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[0])
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{err: staffRepo.ErrStaffNotFound},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 7, Date: monday, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_RepositoryErrorIsFatal(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{err: errors.New("connection refused")},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{},
		&stubBlockRepo{},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 0, Date: monday, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StaffID: 1, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_IsIdempotentOverSnapshot(t *testing.T) {
	uc := newTestUseCase(
		&stubStaffRepo{staff: workingStaff()},
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			appointmentAt(10, 1, "14:00", 30),
		}},
		&stubBlockRepo{blocks: []*domain.Block{
			blockAt(1, domain.BlockKindBlocking, "10:00", "12:00"),
		}},
		&stubSettingsRepo{leadTimeMinutes: 30},
		dayBefore,
	)

	first, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{StaffID: 1, Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

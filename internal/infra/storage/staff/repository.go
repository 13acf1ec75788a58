package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SPS-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с мастерами и их расписаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера вместе с недельным шаблоном расписания
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var member domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.Name,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	schedule, err := r.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	member.Schedule = schedule

	return &member, nil
}

// GetSchedule получает недельный шаблон расписания мастера
// Возвращает ErrStaffNotFound, если нет ни одной строки расписания,
// и ErrScheduleIncomplete, если строк меньше семи
func (r *Repository) GetSchedule(ctx context.Context, staffID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "enabled", "start_time", "end_time").
		From("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("%w: GetSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedule domain.WeeklySchedule
	count := 0

	for rows.Next() {
		var (
			weekday    int
			enabled    bool
			start, end string
		)
		if err := rows.Scan(&weekday, &enabled, &start, &end); err != nil {
			return domain.WeeklySchedule{}, fmt.Errorf("%w: GetSchedule - scan row: %v", ErrScanRow, err)
		}

		day := domain.DaySchedule{
			Enabled: enabled,
			Start:   types.TimeString(start),
			End:     types.TimeString(end),
		}
		setWeekday(&schedule, time.Weekday(weekday), day)
		count++
	}

	if err := rows.Err(); err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("%w: GetSchedule - rows error: %v", ErrScanRow, err)
	}

	if count == 0 {
		return domain.WeeklySchedule{}, ErrStaffNotFound
	}
	if count != 7 {
		return domain.WeeklySchedule{}, fmt.Errorf("%w: staff_id=%d has %d of 7 weekday rows", ErrScheduleIncomplete, staffID, count)
	}

	return schedule, nil
}

// UpdateSchedule заменяет недельный шаблон мастера целиком (7 upsert-ов)
func (r *Repository) UpdateSchedule(ctx context.Context, staffID int64, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := schedule.ForWeekday(weekday)

		query, args, err := psqlbuilder.Insert("staff_schedules").
			Columns("staff_id", "weekday", "enabled", "start_time", "end_time").
			Values(staffID, int(weekday), day.Enabled, day.Start.String(), day.End.String()).
			Suffix("ON CONFLICT (staff_id, weekday) DO UPDATE SET enabled = EXCLUDED.enabled, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpdateSchedule - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpdateSchedule - execute upsert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// ListByIDs получает мастеров по списку ID (без расписаний)
// Используется календарём для подписей событий
func (r *Repository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Staff, error) {
	if len(ids) == 0 {
		return []*domain.Staff{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("staff").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.Staff, 0)
	for rows.Next() {
		var member domain.Staff
		if err := rows.Scan(&member.ID, &member.Name, &member.CreatedAt, &member.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByIDs - scan row: %v", ErrScanRow, err)
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// ListAll получает всех мастеров (без расписаний)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("staff").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.Staff, 0)
	for rows.Next() {
		var member domain.Staff
		if err := rows.Scan(&member.ID, &member.Name, &member.CreatedAt, &member.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

func setWeekday(schedule *domain.WeeklySchedule, weekday time.Weekday, day domain.DaySchedule) {
	switch weekday {
	case time.Monday:
		schedule.Monday = day
	case time.Tuesday:
		schedule.Tuesday = day
	case time.Wednesday:
		schedule.Wednesday = day
	case time.Thursday:
		schedule.Thursday = day
	case time.Friday:
		schedule.Friday = day
	case time.Saturday:
		schedule.Saturday = day
	case time.Sunday:
		schedule.Sunday = day
	}
}

package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SPS-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// ListOverrides получает точечные исключения из расписания мастера за период
func (r *Repository) ListOverrides(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "date", "enabled", "start_time", "end_time", "created_at", "updated_at").
		From("staff_schedule_overrides").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.ScheduleOverride, 0)
	for rows.Next() {
		var (
			override   domain.ScheduleOverride
			start, end string
		)
		err := rows.Scan(
			&override.ID,
			&override.StaffID,
			&override.Date,
			&override.Enabled,
			&start,
			&end,
			&override.CreatedAt,
			&override.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOverrides - scan row: %v", ErrScanRow, err)
		}
		override.Start = types.TimeString(start)
		override.End = types.TimeString(end)
		overrides = append(overrides, &override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// UpsertOverride создает или обновляет исключение на конкретную дату
func (r *Repository) UpsertOverride(ctx context.Context, override *domain.ScheduleOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedule_overrides").
		Columns("staff_id", "date", "enabled", "start_time", "end_time").
		Values(override.StaffID, override.Date, override.Enabled, override.Start.String(), override.End.String()).
		Suffix("ON CONFLICT (staff_id, date) DO UPDATE SET enabled = EXCLUDED.enabled, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertOverride - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

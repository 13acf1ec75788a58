package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

func TestDayScheduleRequest_ToDomain(t *testing.T) {
	tests := []struct {
		name    string
		req     DayScheduleRequest
		want    domain.DaySchedule
		wantErr error
	}{
		{
			name: "enabled day",
			req:  DayScheduleRequest{Enabled: true, Start: "09:00", End: "18:00"},
			want: domain.DaySchedule{Enabled: true, Start: "09:00", End: "18:00"},
		},
		{
			name: "disabled day skips time validation",
			req:  DayScheduleRequest{Enabled: false, Start: "garbage", End: ""},
			want: domain.DaySchedule{Enabled: false},
		},
		{
			name:    "malformed start",
			req:     DayScheduleRequest{Enabled: true, Start: "9am", End: "18:00"},
			wantErr: ErrInvalidTime,
		},
		{
			name:    "start equals end",
			req:     DayScheduleRequest{Enabled: true, Start: "09:00", End: "09:00"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "start after end",
			req:     DayScheduleRequest{Enabled: true, Start: "18:00", End: "09:00"},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToDomain()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateScheduleRequest_ToDomain(t *testing.T) {
	workday := DayScheduleRequest{Enabled: true, Start: "09:00", End: "18:00"}
	req := &UpdateScheduleRequest{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  DayScheduleRequest{Enabled: true, Start: "10:00", End: "16:00"},
	}

	schedule, err := req.ToDomain()
	require.NoError(t, err)

	assert.True(t, schedule.Monday.Enabled)
	assert.Equal(t, types.TimeString("09:00"), schedule.Monday.Start)
	assert.Equal(t, types.TimeString("16:00"), schedule.Saturday.End)
	assert.False(t, schedule.Sunday.Enabled)

	// Ошибка в любом дне отклоняет весь шаблон
	req.Wednesday = DayScheduleRequest{Enabled: true, Start: "18:00", End: "09:00"}
	_, err = req.ToDomain()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestFromDomainSchedule(t *testing.T) {
	resp := FromDomainSchedule(7, domain.WeeklySchedule{
		Monday: domain.DaySchedule{Enabled: true, Start: "09:00", End: "18:00"},
	})

	assert.Equal(t, int64(7), resp.StaffID)
	assert.Equal(t, DayScheduleResponse{Enabled: true, Start: "09:00", End: "18:00"}, resp.Monday)
	// У выключенного дня времена не сериализуются
	assert.Equal(t, DayScheduleResponse{Enabled: false}, resp.Sunday)
}

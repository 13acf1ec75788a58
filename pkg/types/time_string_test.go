package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:30", false},
		{"valid midnight", "00:00", false},
		{"valid last minute", "23:59", false},
		{"missing leading zero", "9:30", true},
		{"out of range hour", "24:00", true},
		{"out of range minute", "10:60", true},
		{"with seconds", "10:00:00", true},
		{"empty", "", true},
		{"garbage", "abcde", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	minutes, err := TimeString("09:30").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = TimeString("00:00").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = TimeString("9:30").MinutesFromMidnight()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Hours(t *testing.T) {
	hours, err := TimeString("09:30").Hours()
	require.NoError(t, err)
	assert.InDelta(t, 9.5, hours, 1e-9)

	hours, err = TimeString("14:15").Hours()
	require.NoError(t, err)
	assert.InDelta(t, 14.25, hours, 1e-9)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	// Ровно до конца суток - переполнение: 24:00 непредставимо
	_, err = TimeString("23:00").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	result, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), result)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	_, err = NewTimeStringFromMinutes(1440)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.True(t, TimeString("09:00").Equal("09:00"))

	// Некорректные значения сравниваются как false
	assert.False(t, TimeString("бред").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("бред"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 8, 28, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinuteInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b MinuteInterval
		want bool
	}{
		{"nested", MinuteInterval{540, 600}, MinuteInterval{550, 590}, true},
		{"partial", MinuteInterval{540, 600}, MinuteInterval{590, 650}, true},
		{"identical", MinuteInterval{540, 600}, MinuteInterval{540, 600}, true},
		{"adjacent not overlapping", MinuteInterval{540, 600}, MinuteInterval{600, 660}, false},
		{"disjoint", MinuteInterval{540, 600}, MinuteInterval{700, 760}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMinuteInterval_Subtract(t *testing.T) {
	base := MinuteInterval{Start: 600, End: 720} // 10:00-12:00

	// Дырка посередине режет на две части
	parts := base.Subtract(MinuteInterval{Start: 630, End: 660})
	assert.Equal(t, []MinuteInterval{{600, 630}, {660, 720}}, parts)

	// Дырка с края оставляет одну часть
	parts = base.Subtract(MinuteInterval{Start: 600, End: 660})
	assert.Equal(t, []MinuteInterval{{660, 720}}, parts)

	// Полное накрытие не оставляет ничего
	parts = base.Subtract(MinuteInterval{Start: 540, End: 780})
	assert.Empty(t, parts)

	// Непересекающаяся дырка ничего не меняет
	parts = base.Subtract(MinuteInterval{Start: 720, End: 780})
	assert.Equal(t, []MinuteInterval{base}, parts)
}

func TestSubtractAll(t *testing.T) {
	blocking := []MinuteInterval{{600, 720}} // 10:00-12:00
	available := []MinuteInterval{{660, 690}} // 11:00-11:30

	result := SubtractAll(blocking, available)
	assert.Equal(t, []MinuteInterval{{600, 660}, {690, 720}}, result)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbs/models"
)

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8*60+30, minutes)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("8h30")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:30", FormatClock(8*60+30))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(23*60+59))
}

func TestCombineDateTime(t *testing.T) {
	instant, err := CombineDateTime("15/10/2026", "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), instant)

	_, err = CombineDateTime("2026-10-15", "09:30")
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{"tách rời", 9 * 60, 10 * 60, 11 * 60, 12 * 60, false},
		{"chạm biên không tính trùng", 9 * 60, 10 * 60, 10 * 60, 11 * 60, false},
		{"chạm biên chiều ngược lại", 10 * 60, 11 * 60, 9 * 60, 10 * 60, false},
		{"giao một phần", 9 * 60, 10*60 + 30, 10 * 60, 11 * 60, true},
		{"bao trọn", 9 * 60, 12 * 60, 10 * 60, 11 * 60, true},
		{"bị bao trọn", 10 * 60, 11 * 60, 9 * 60, 12 * 60, true},
		{"trùng hoàn toàn", 10 * 60, 11 * 60, 10 * 60, 11 * 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Giao nhau phải đối xứng
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestWithinWorkingHours(t *testing.T) {
	hoursStart := 7 * 60
	hoursEnd := 22 * 60

	assert.True(t, WithinWorkingHours(9*60, 11*60, hoursStart, hoursEnd))
	assert.True(t, WithinWorkingHours(hoursStart, hoursEnd, hoursStart, hoursEnd))
	assert.False(t, WithinWorkingHours(6*60, 7*60, hoursStart, hoursEnd))
	assert.False(t, WithinWorkingHours(21*60, 23*60, hoursStart, hoursEnd))
}

func TestIsHoliday(t *testing.T) {
	holidays := []models.Holiday{
		{Name: "Quốc khánh", FromDate: "02/09/2026", ToDate: "02/09/2026"},
		{Name: "Tết", FromDate: "16/02/2026", ToDate: "22/02/2026"},
	}

	assert.True(t, IsHoliday("02/09/2026", holidays))
	assert.True(t, IsHoliday("16/02/2026", holidays))
	assert.True(t, IsHoliday("19/02/2026", holidays))
	assert.True(t, IsHoliday("22/02/2026", holidays))
	assert.False(t, IsHoliday("15/02/2026", holidays))
	assert.False(t, IsHoliday("23/02/2026", holidays))
	assert.False(t, IsHoliday("03/09/2026", holidays))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsPast("15/10/2026", "09:00", now))
	// Bằng now cũng tính là đã qua
	assert.True(t, IsPast("15/10/2026", "10:00", now))
	assert.False(t, IsPast("15/10/2026", "10:01", now))
	assert.False(t, IsPast("16/10/2026", "08:00", now))
}

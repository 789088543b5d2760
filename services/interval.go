package services

import (
	"time"

	"fbs/models"
)

// Định dạng ngày giờ dùng chung toàn hệ thống
const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04"
)

// ParseDate chuyển chuỗi ngày 02/01/2006 thành time.Time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock chuyển chuỗi giờ 15:04 thành số phút tính từ 0h
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock chuyển số phút tính từ 0h về chuỗi giờ 15:04
func FormatClock(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(ClockLayout)
}

// CombineDateTime ghép ngày 02/01/2006 và giờ 15:04 thành một mốc thời gian
func CombineDateTime(dateStr, clockStr string) (time.Time, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseClock(clockStr)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(minutes) * time.Minute), nil
}

// Overlaps kiểm tra hai khoảng [aStart, aEnd) và [bStart, bEnd) có giao nhau không.
// Khoảng nửa mở: hai khoảng chạm biên không tính là trùng.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// WithinWorkingHours kiểm tra khoảng [start, end] có nằm trọn trong giờ làm việc không
func WithinWorkingHours(start, end, hoursStart, hoursEnd int) bool {
	return start >= hoursStart && end <= hoursEnd
}

// IsHoliday kiểm tra ngày có rơi vào kỳ nghỉ nào không
func IsHoliday(dateStr string, holidays []models.Holiday) bool {
	date, err := ParseDate(dateStr)
	if err != nil {
		return false
	}
	for _, holiday := range holidays {
		from, err := ParseDate(holiday.FromDate)
		if err != nil {
			continue
		}
		to, err := ParseDate(holiday.ToDate)
		if err != nil {
			continue
		}
		if !date.Before(from) && !date.After(to) {
			return true
		}
	}
	return false
}

// IsPast kiểm tra mốc ngày + giờ bắt đầu đã qua so với now chưa
// (bằng hoặc trước now đều tính là đã qua)
func IsPast(dateStr, clockStr string, now time.Time) bool {
	instant, err := CombineDateTime(dateStr, clockStr)
	if err != nil {
		return false
	}
	return !instant.After(now)
}

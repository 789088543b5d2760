package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fbs/models"
)

func TestGenerateBookingCode(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	code := GenerateBookingCode(now)

	assert.True(t, strings.HasPrefix(code, "BK-20261015-"))
	assert.Len(t, code, len("BK-20261015-")+8)
	assert.Equal(t, code, strings.ToUpper(code))

	// Hai mã sinh liên tiếp phải khác nhau
	assert.NotEqual(t, code, GenerateBookingCode(now))
}

func TestNoShowDue(t *testing.T) {
	base := models.Booking{
		BookingDate: "15/10/2026",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Status:      models.BookingStatusApproved,
	}

	beforeEnd := time.Date(2026, 10, 15, 10, 59, 0, 0, time.UTC)
	atEnd := time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC)
	afterEnd := time.Date(2026, 10, 15, 11, 1, 0, 0, time.UTC)

	b := base
	assert.False(t, NoShowDue(&b, beforeEnd))
	assert.False(t, NoShowDue(&b, atEnd))
	assert.True(t, NoShowDue(&b, afterEnd))

	// Đã từng nhận phòng thì không bao giờ vắng mặt
	checkedInAt := time.Date(2026, 10, 15, 9, 5, 0, 0, time.UTC)
	b = base
	b.CheckedInAt = &checkedInAt
	assert.False(t, NoShowDue(&b, afterEnd))

	// Chỉ đơn Approved mới bị quét
	for _, status := range []models.BookingStatus{
		models.BookingStatusWaitingLecturerApproval,
		models.BookingStatusWaitingAdminApproval,
		models.BookingStatusCheckedIn,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
	} {
		b = base
		b.Status = status
		assert.False(t, NoShowDue(&b, afterEnd), "status %s", status)
	}
}

func TestSlotLockKey(t *testing.T) {
	assert.Equal(t, "booking_slot_lock:7:15/10/2026", SlotLockKey(7, "15/10/2026"))
	assert.Equal(t, "booking_tx_lock:42", BookingLockKey(42))
}

package services

import (
	"fmt"
	"time"

	"fbs/models"
)

// Cửa sổ nhận/trả phòng mặc định
const (
	CheckInGraceBefore = 15 * time.Minute // được nhận phòng sớm nhất 15 phút trước giờ bắt đầu
	CheckOutLateAfter  = 30 * time.Minute // trả phòng muộn quá 30 phút sau giờ kết thúc thì cảnh báo
)

// GateResult kết quả kiểm tra cổng nhận/trả phòng. Warning là cảnh báo
// không chặn hành động (ví dụ nhận phòng muộn).
type GateResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// CanCheckIn kiểm tra đơn có được nhận phòng tại thời điểm now không.
// Chỉ đơn Approved, trong cửa sổ [giờ bắt đầu - grace, giờ kết thúc].
func CanCheckIn(b *models.Booking, now time.Time) GateResult {
	return CanCheckInWithGrace(b, now, CheckInGraceBefore)
}

// CanCheckInWithGrace như CanCheckIn nhưng cho phép cấu hình khoảng grace
func CanCheckInWithGrace(b *models.Booking, now time.Time, grace time.Duration) GateResult {
	if b.Status != models.BookingStatusApproved {
		return GateResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Chỉ nhận phòng khi đơn đã được duyệt (trạng thái hiện tại: %s)", b.Status.String()),
		}
	}

	start, err := CombineDateTime(b.BookingDate, b.StartTime)
	if err != nil {
		return GateResult{Allowed: false, Reason: "Thời gian của đơn không hợp lệ"}
	}
	end, err := CombineDateTime(b.BookingDate, b.EndTime)
	if err != nil {
		return GateResult{Allowed: false, Reason: "Thời gian của đơn không hợp lệ"}
	}

	opensAt := start.Add(-grace)
	if now.Before(opensAt) {
		return GateResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Chưa đến giờ nhận phòng, có thể nhận từ %s", opensAt.Format(ClockLayout)),
		}
	}
	if now.After(end) {
		return GateResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Đã quá giờ kết thúc (%s), không thể nhận phòng", b.EndTime),
		}
	}

	result := GateResult{Allowed: true}
	if now.After(start) {
		result.Warning = "Nhận phòng muộn so với giờ bắt đầu"
	}
	return result
}

// CanCheckOut kiểm tra đơn có được trả phòng không. Thời gian chỉ mang tính
// cảnh báo, không chặn: người dùng có thể dùng quá giờ hợp lệ.
func CanCheckOut(b *models.Booking, now time.Time) GateResult {
	if b.Status != models.BookingStatusCheckedIn {
		return GateResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Chỉ trả phòng khi đơn đang sử dụng (trạng thái hiện tại: %s)", b.Status.String()),
		}
	}

	result := GateResult{Allowed: true}
	if end, err := CombineDateTime(b.BookingDate, b.EndTime); err == nil {
		if now.After(end.Add(CheckOutLateAfter)) {
			result.Warning = fmt.Sprintf("Trả phòng muộn, giờ kết thúc là %s", b.EndTime)
		}
	}
	return result
}

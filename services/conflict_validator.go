package services

import (
	"fmt"
	"time"

	"fbs/errors"
	"fbs/models"
)

// BookingCandidate thông tin một yêu cầu đặt phòng cần kiểm tra trùng lịch
type BookingCandidate struct {
	FacilityID   uint
	BookingDate  string // 02/01/2006
	StartTime    string // 15:04
	EndTime      string // 15:04
	Participants int
}

// ValidateBookingSlot kiểm tra một yêu cầu đặt phòng theo thứ tự cố định:
// quá khứ -> ngày lễ -> giờ làm việc -> sức chứa -> trùng khung giờ.
// Lỗi đầu tiên thắng để trả về thông báo cụ thể nhất. Hàm thuần, không
// side effect; được dùng cả khi tạo đơn lẫn khi đổi phòng.
func ValidateBookingSlot(candidate BookingCandidate, existing []models.Booking, campus models.Campus, holidays []models.Holiday, facility models.Facility, now time.Time) error {
	return validateSlot(candidate, existing, campus, holidays, facility, now, false)
}

// ValidateReassignmentSlot kiểm tra phòng thay thế cho phần còn lại của một
// đơn đang sử dụng. Giờ bắt đầu của candidate là thời điểm quyết định nên
// bước kiểm tra quá khứ được bỏ qua.
func ValidateReassignmentSlot(candidate BookingCandidate, existing []models.Booking, campus models.Campus, holidays []models.Holiday, facility models.Facility) error {
	return validateSlot(candidate, existing, campus, holidays, facility, time.Time{}, true)
}

func validateSlot(candidate BookingCandidate, existing []models.Booking, campus models.Campus, holidays []models.Holiday, facility models.Facility, now time.Time, skipPast bool) error {
	if _, err := ParseDate(candidate.BookingDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày đặt không hợp lệ", err)
	}

	start, err := ParseClock(candidate.StartTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ bắt đầu không hợp lệ", err)
	}

	end, err := ParseClock(candidate.EndTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ kết thúc không hợp lệ", err)
	}

	if end <= start {
		return errors.NewAppError(errors.ErrCodeValidation, "Giờ kết thúc phải sau giờ bắt đầu", nil)
	}

	if !skipPast && IsPast(candidate.BookingDate, candidate.StartTime, now) {
		return errors.NewAppError(errors.ErrCodePastDateTime, "Thời gian đặt phòng đã qua", nil)
	}

	if IsHoliday(candidate.BookingDate, holidays) {
		return errors.NewAppError(errors.ErrCodeHolidayBlackout, "Không thể đặt phòng vào ngày nghỉ lễ", nil)
	}

	hoursStart, err := ParseClock(campus.WorkingHoursStart)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ làm việc của cơ sở không hợp lệ", err)
	}
	hoursEnd, err := ParseClock(campus.WorkingHoursEnd)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ làm việc của cơ sở không hợp lệ", err)
	}
	if !WithinWorkingHours(start, end, hoursStart, hoursEnd) {
		return errors.NewAppError(errors.ErrCodeOutsideWorkingHours,
			fmt.Sprintf("Khung giờ đặt phải nằm trong giờ làm việc %s - %s", campus.WorkingHoursStart, campus.WorkingHoursEnd), nil)
	}

	if candidate.Participants > facility.Capacity {
		return errors.NewAppError(errors.ErrCodeCapacityExceeded,
			fmt.Sprintf("Số người tham gia (%d) vượt quá sức chứa của phòng (%d)", candidate.Participants, facility.Capacity), nil)
	}

	for _, booking := range existing {
		if !booking.Status.IsLive() {
			continue
		}
		if booking.FacilityID != candidate.FacilityID || booking.BookingDate != candidate.BookingDate {
			continue
		}

		existingStart, err := ParseClock(booking.StartTime)
		if err != nil {
			continue
		}
		existingEnd, err := ParseClock(booking.EndTime)
		if err != nil {
			continue
		}

		if Overlaps(start, end, existingStart, existingEnd) {
			return errors.NewConflictError(
				fmt.Sprintf("Phòng đã có đơn trong khung giờ %s - %s", booking.StartTime, booking.EndTime),
				booking.StartTime, booking.EndTime)
		}
	}

	return nil
}

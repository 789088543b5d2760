package models

import (
	"strings"
	"time"

	"fbs/constants"
	"fbs/errors"
)

// BookingState định nghĩa interface cho các trạng thái của đơn đặt phòng.
// Mỗi transition tự stamp timestamp tương ứng; mọi transition không được
// khai báo đều trả về lỗi INVALID_TRANSITION.
type BookingState interface {
	Approve(b *Booking, now time.Time) error
	Reject(b *Booking, reason string, now time.Time) error
	Cancel(b *Booking, reason string, now time.Time) error
	CheckIn(b *Booking, now time.Time) error
	CheckOut(b *Booking, now time.Time) error
	MarkNoShow(b *Booking, now time.Time) error
}

// InitialStatus trạng thái khởi tạo theo vai trò người đặt:
// sinh viên phải qua giảng viên duyệt trước, giảng viên vào thẳng hàng chờ admin.
func InitialStatus(requesterRole int) (BookingStatus, error) {
	switch requesterRole {
	case constants.RoleStudent:
		return BookingStatusWaitingLecturerApproval, nil
	case constants.RoleLecturer:
		return BookingStatusWaitingAdminApproval, nil
	default:
		return 0, errors.NewAppError(errors.ErrCodeInvalidRole, "Chỉ sinh viên hoặc giảng viên mới được đặt phòng", nil)
	}
}

func requireReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Lý do không được để trống", nil)
	}
	return nil
}

// baseState trả về INVALID_TRANSITION cho mọi hành động; các state nhúng
// baseState và override những transition hợp lệ của mình.
type baseState struct {
	status BookingStatus
}

func (s baseState) Approve(b *Booking, now time.Time) error {
	return errors.NewInvalidTransition(s.status.String(), "approve")
}

func (s baseState) Reject(b *Booking, reason string, now time.Time) error {
	return errors.NewInvalidTransition(s.status.String(), "reject")
}

func (s baseState) Cancel(b *Booking, reason string, now time.Time) error {
	return errors.NewInvalidTransition(s.status.String(), "cancel")
}

func (s baseState) CheckIn(b *Booking, now time.Time) error {
	return errors.NewInvalidTransition(s.status.String(), "check-in")
}

func (s baseState) CheckOut(b *Booking, now time.Time) error {
	return errors.NewInvalidTransition(s.status.String(), "check-out")
}

func (s baseState) MarkNoShow(b *Booking, now time.Time) error {
	return errors.NewInvalidTransition(s.status.String(), "no-show")
}

// WaitingLecturerState đơn của sinh viên đang chờ giảng viên duyệt
type WaitingLecturerState struct{ baseState }

func (s *WaitingLecturerState) Approve(b *Booking, now time.Time) error {
	b.Status = BookingStatusWaitingAdminApproval
	b.LecturerDecidedAt = &now
	return nil
}

func (s *WaitingLecturerState) Reject(b *Booking, reason string, now time.Time) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	b.Status = BookingStatusRejected
	b.RejectReason = strings.TrimSpace(reason)
	b.LecturerDecidedAt = &now
	return nil
}

// WaitingAdminState đơn đang chờ quản trị viên duyệt
type WaitingAdminState struct{ baseState }

func (s *WaitingAdminState) Approve(b *Booking, now time.Time) error {
	b.Status = BookingStatusApproved
	b.AdminDecidedAt = &now
	return nil
}

func (s *WaitingAdminState) Reject(b *Booking, reason string, now time.Time) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	b.Status = BookingStatusRejected
	b.RejectReason = strings.TrimSpace(reason)
	b.AdminDecidedAt = &now
	return nil
}

func (s *WaitingAdminState) Cancel(b *Booking, reason string, now time.Time) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	b.Status = BookingStatusCancelled
	b.CancelReason = strings.TrimSpace(reason)
	b.CancelledAt = &now
	return nil
}

// ApprovedState đơn đã được duyệt, chờ nhận phòng
type ApprovedState struct{ baseState }

func (s *ApprovedState) Cancel(b *Booking, reason string, now time.Time) error {
	if err := requireReason(reason); err != nil {
		return err
	}
	b.Status = BookingStatusCancelled
	b.CancelReason = strings.TrimSpace(reason)
	b.CancelledAt = &now
	return nil
}

func (s *ApprovedState) CheckIn(b *Booking, now time.Time) error {
	b.Status = BookingStatusCheckedIn
	b.CheckedInAt = &now
	return nil
}

func (s *ApprovedState) MarkNoShow(b *Booking, now time.Time) error {
	// Chỉ đánh vắng mặt khi chưa từng nhận phòng
	if b.CheckedInAt != nil {
		return errors.NewInvalidTransition(s.status.String(), "no-show")
	}
	b.Status = BookingStatusNoShow
	return nil
}

// CheckedInState đơn đang sử dụng phòng
type CheckedInState struct{ baseState }

func (s *CheckedInState) CheckOut(b *Booking, now time.Time) error {
	b.Status = BookingStatusCompleted
	b.CheckedOutAt = &now
	return nil
}

// terminalState các trạng thái kết thúc: không transition nào hợp lệ
type terminalState struct{ baseState }

// GetBookingState trả về state tương ứng với trạng thái đơn
func GetBookingState(status BookingStatus) BookingState {
	switch status {
	case BookingStatusWaitingLecturerApproval:
		return &WaitingLecturerState{baseState{status}}
	case BookingStatusWaitingAdminApproval:
		return &WaitingAdminState{baseState{status}}
	case BookingStatusApproved:
		return &ApprovedState{baseState{status}}
	case BookingStatusCheckedIn:
		return &CheckedInState{baseState{status}}
	default:
		return &terminalState{baseState{status}}
	}
}

package services

import (
	"fbs/constants"
	"fbs/models"
)

// NextApprover trả về vai trò phải duyệt kế tiếp cho một đơn, hoặc RoleNone
// nếu đơn không còn ở giai đoạn duyệt. Đây là nguồn sự thật duy nhất, được
// dùng cả khi kiểm tra quyền duyệt lẫn khi liệt kê "đơn chờ tôi duyệt".
func NextApprover(requesterRole int, status models.BookingStatus) int {
	switch {
	case requesterRole == constants.RoleStudent && status == models.BookingStatusWaitingLecturerApproval:
		return constants.RoleLecturer
	case requesterRole == constants.RoleStudent && status == models.BookingStatusWaitingAdminApproval:
		return constants.RoleAdmin
	case requesterRole == constants.RoleLecturer && status == models.BookingStatusWaitingAdminApproval:
		return constants.RoleAdmin
	}
	return constants.RoleNone
}

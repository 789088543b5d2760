package dto

import (
	"time"
)

// BookingRequestCommon các trường chung của mọi yêu cầu đặt phòng
type BookingRequestCommon struct {
	FacilityID   uint   `json:"facilityId" binding:"required"`
	BookingDate  string `json:"bookingDate" binding:"required,bookingdate"`
	StartTime    string `json:"startTime" binding:"required,clock"`
	EndTime      string `json:"endTime" binding:"required,clock"`
	Participants int    `json:"participants" binding:"required,gt=0"`
	Purpose      string `json:"purpose" binding:"required"`
	Note         string `json:"note,omitempty"`
}

// StudentBookingRequest yêu cầu đặt phòng của sinh viên: bắt buộc có email
// giảng viên hướng dẫn để định tuyến bước duyệt đầu tiên
type StudentBookingRequest struct {
	BookingRequestCommon
	LecturerEmail string `json:"lecturerEmail" binding:"required,email"`
}

// LecturerBookingRequest yêu cầu đặt phòng của giảng viên: vào thẳng hàng chờ admin
type LecturerBookingRequest struct {
	BookingRequestCommon
}

// DecisionRequest duyệt một đơn, comment không bắt buộc
type DecisionRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Comment string `json:"comment,omitempty"`
}

// RejectRequest từ chối một đơn, bắt buộc có lý do
type RejectRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// CancelRequest hủy một đơn, bắt buộc có lý do
type CancelRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// CheckRequest nhận hoặc trả phòng
type CheckRequest struct {
	ID uint `json:"id" binding:"required"`
}

// ActorResponse là DTO cho thông tin user/actor
type ActorResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// BookingFacilityResponse thông tin phòng trong response của đơn
type BookingFacilityResponse struct {
	ID       uint   `json:"id"`
	CampusID uint   `json:"campusId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// BookingResponse là DTO cho response của đơn đặt phòng
type BookingResponse struct {
	ID             uint                    `json:"id"`
	BookingCode    string                  `json:"bookingCode"`
	Facility       BookingFacilityResponse `json:"facility"`
	BookingDate    string                  `json:"bookingDate"`
	StartTime      string                  `json:"startTime"`
	EndTime        string                  `json:"endTime"`
	User           ActorResponse           `json:"user"`
	RequesterRole  int                     `json:"requesterRole"`
	Participants   int                     `json:"participants"`
	Purpose        string                  `json:"purpose"`
	Note           string                  `json:"note,omitempty"`
	LecturerEmail  string                  `json:"lecturerEmail,omitempty"`
	Status         int                     `json:"status"`
	StatusName     string                  `json:"statusName"`
	NextApprover   int                     `json:"nextApprover"`
	RejectReason   string                  `json:"rejectReason,omitempty"`
	ApproveComment string                  `json:"approveComment,omitempty"`
	CancelReason   string                  `json:"cancelReason,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	CheckedInAt    *time.Time              `json:"checkedInAt,omitempty"`
	CheckedOutAt   *time.Time              `json:"checkedOutAt,omitempty"`
}

// GateResponse kết quả kiểm tra cổng nhận/trả phòng cho UI
type GateResponse struct {
	BookingID uint   `json:"bookingId"`
	Allowed   bool   `json:"allowed"`
	Reason    string `json:"reason,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

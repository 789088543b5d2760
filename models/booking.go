package models

import (
	"time"
)

// BookingStatus trạng thái của đơn đặt phòng
type BookingStatus int

const (
	BookingStatusWaitingLecturerApproval BookingStatus = 0
	BookingStatusWaitingAdminApproval    BookingStatus = 1
	BookingStatusApproved                BookingStatus = 2
	BookingStatusRejected                BookingStatus = 3
	BookingStatusCancelled               BookingStatus = 4
	BookingStatusCheckedIn               BookingStatus = 5
	BookingStatusCompleted               BookingStatus = 6
	BookingStatusNoShow                  BookingStatus = 7
)

// String trả về tên trạng thái
func (s BookingStatus) String() string {
	switch s {
	case BookingStatusWaitingLecturerApproval:
		return "WAITING_LECTURER_APPROVAL"
	case BookingStatusWaitingAdminApproval:
		return "WAITING_ADMIN_APPROVAL"
	case BookingStatusApproved:
		return "APPROVED"
	case BookingStatusRejected:
		return "REJECTED"
	case BookingStatusCancelled:
		return "CANCELLED"
	case BookingStatusCheckedIn:
		return "CHECKED_IN"
	case BookingStatusCompleted:
		return "COMPLETED"
	case BookingStatusNoShow:
		return "NO_SHOW"
	default:
		return "UNKNOWN"
	}
}

// IsValid kiểm tra giá trị trạng thái có nằm trong enum không
func (s BookingStatus) IsValid() bool {
	return s >= BookingStatusWaitingLecturerApproval && s <= BookingStatusNoShow
}

// IsLive trạng thái còn chiếm khung giờ (dùng cho kiểm tra trùng lịch)
func (s BookingStatus) IsLive() bool {
	switch s {
	case BookingStatusWaitingLecturerApproval,
		BookingStatusWaitingAdminApproval,
		BookingStatusApproved,
		BookingStatusCheckedIn:
		return true
	}
	return false
}

// IsTerminal trạng thái kết thúc, không còn chuyển tiếp nào hợp lệ
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusRejected,
		BookingStatusCancelled,
		BookingStatusCompleted,
		BookingStatusNoShow:
		return true
	}
	return false
}

// LiveStatuses danh sách trạng thái còn chiếm khung giờ, dùng cho truy vấn trùng lịch
func LiveStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusWaitingLecturerApproval,
		BookingStatusWaitingAdminApproval,
		BookingStatusApproved,
		BookingStatusCheckedIn,
	}
}

type Booking struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	BookingCode    string        `json:"bookingCode" gorm:"uniqueIndex;size:32"`
	FacilityID     uint          `json:"facilityId" gorm:"index:idx_bookings_facility_date"`
	Facility       Facility      `json:"facility" gorm:"foreignKey:FacilityID"`
	BookingDate    string        `json:"bookingDate" gorm:"index:idx_bookings_facility_date"` // Ngày đặt, định dạng 02/01/2006
	StartTime      string        `json:"startTime"`                                           // Giờ bắt đầu, định dạng 15:04
	EndTime        string        `json:"endTime"`                                             // Giờ kết thúc, định dạng 15:04
	UserID         uint          `json:"userId"`
	User           *User         `json:"user" gorm:"foreignKey:UserID"`
	RequesterRole  int           `json:"requesterRole"`
	Participants   int           `json:"participants"`
	Purpose        string        `json:"purpose"`
	Note           string        `json:"note,omitempty"`
	LecturerEmail  string        `json:"lecturerEmail,omitempty"` // Bắt buộc khi người đặt là sinh viên
	LecturerID     *uint         `json:"lecturerId,omitempty"`
	AdminID        *uint         `json:"adminId,omitempty"`
	Status         BookingStatus `json:"status"`
	RejectReason   string        `json:"rejectReason,omitempty"`
	ApproveComment string        `json:"approveComment,omitempty"`
	CancelReason   string        `json:"cancelReason,omitempty"`

	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	LecturerDecidedAt *time.Time `json:"lecturerDecidedAt,omitempty"`
	AdminDecidedAt    *time.Time `json:"adminDecidedAt,omitempty"`
	CheckedInAt       *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt      *time.Time `json:"checkedOutAt,omitempty"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
}

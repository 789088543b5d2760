package builders

import (
	"fbs/models"
)

// BookingBuilder giúp tạo đơn đặt phòng theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithRequester thêm thông tin người đặt
func (b *BookingBuilder) WithRequester(userID uint, role int) *BookingBuilder {
	b.booking.UserID = userID
	b.booking.RequesterRole = role
	return b
}

// WithFacility thêm phòng
func (b *BookingBuilder) WithFacility(facilityID uint) *BookingBuilder {
	b.booking.FacilityID = facilityID
	return b
}

// WithSlot thêm khung giờ
func (b *BookingBuilder) WithSlot(date, start, end string) *BookingBuilder {
	b.booking.BookingDate = date
	b.booking.StartTime = start
	b.booking.EndTime = end
	return b
}

// WithParticipants thêm số người tham gia
func (b *BookingBuilder) WithParticipants(participants int) *BookingBuilder {
	b.booking.Participants = participants
	return b
}

// WithPurpose thêm mục đích sử dụng
func (b *BookingBuilder) WithPurpose(purpose, note string) *BookingBuilder {
	b.booking.Purpose = purpose
	b.booking.Note = note
	return b
}

// WithLecturerEmail thêm email giảng viên hướng dẫn
func (b *BookingBuilder) WithLecturerEmail(email string) *BookingBuilder {
	b.booking.LecturerEmail = email
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status models.BookingStatus) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithCode thêm mã đơn
func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.booking.BookingCode = code
	return b
}

// Build tạo đơn hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}

package notification

import (
	"fmt"

	"github.com/olahol/melody"

	"fbs/models"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder dựng thông báo cho một chuyển trạng thái của đơn
type BookingMessageBuilder struct {
	bookingCode string
	status      models.BookingStatus
}

func NewBookingMessageBuilder(bookingCode string, status models.BookingStatus) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingCode: bookingCode,
		status:      status,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn đặt phòng %s chuyển sang trạng thái %s.", b.bookingCode, b.status.String())
}

// IssueMessageBuilder dựng thông báo cho kết quả xử lý sự cố phòng
type IssueMessageBuilder struct {
	bookingCode string
	roomChanged bool
}

func NewIssueMessageBuilder(bookingCode string, roomChanged bool) *IssueMessageBuilder {
	return &IssueMessageBuilder{
		bookingCode: bookingCode,
		roomChanged: roomChanged,
	}
}

func (b *IssueMessageBuilder) Build() string {
	if b.roomChanged {
		return fmt.Sprintf("🔔 Đơn %s đã được đổi sang phòng khác do sự cố.", b.bookingCode)
	}
	return fmt.Sprintf("🔔 Báo cáo sự cố của đơn %s đã bị từ chối.", b.bookingCode)
}

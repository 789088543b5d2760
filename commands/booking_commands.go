package commands

import (
	"fbs/models"

	"gorm.io/gorm"
)

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute() error
}

// CreateBookingCommand command để tạo đơn đặt phòng mới
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *CreateBookingCommand) Execute() error {
	return c.db.Create(c.booking).Error
}

// UpdateBookingCommand command để cập nhật đơn đặt phòng
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute() error {
	return c.db.Save(c.booking).Error
}

// ResolveIssueCommand command để lưu kết quả xử lý sự cố phòng
type ResolveIssueCommand struct {
	issue *models.FacilityIssue
	db    *gorm.DB
}

func NewResolveIssueCommand(issue *models.FacilityIssue, db *gorm.DB) *ResolveIssueCommand {
	return &ResolveIssueCommand{
		issue: issue,
		db:    db,
	}
}

func (c *ResolveIssueCommand) Execute() error {
	return c.db.Save(c.issue).Error
}

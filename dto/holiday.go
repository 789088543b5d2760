package dto

import "time"

// CreateHolidayRequest tạo kỳ nghỉ mới
type CreateHolidayRequest struct {
	Name     string `json:"name" binding:"required"`
	FromDate string `json:"fromDate" binding:"required,bookingdate"`
	ToDate   string `json:"toDate" binding:"required,bookingdate"`
}

// UpdateHolidayRequest cập nhật kỳ nghỉ
type UpdateHolidayRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Name     string `json:"name"`
	FromDate string `json:"fromDate" binding:"omitempty,bookingdate"`
	ToDate   string `json:"toDate" binding:"omitempty,bookingdate"`
}

// HolidayResponse là DTO cho response của kỳ nghỉ
type HolidayResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	FromDate  string    `json:"fromDate"`
	ToDate    string    `json:"toDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package dto

import "time"

// CreateCampusRequest tạo cơ sở mới
type CreateCampusRequest struct {
	Name              string `json:"name" binding:"required"`
	Address           string `json:"address"`
	WorkingHoursStart string `json:"workingHoursStart" binding:"required,clock"`
	WorkingHoursEnd   string `json:"workingHoursEnd" binding:"required,clock"`
}

// UpdateCampusRequest cập nhật cơ sở
type UpdateCampusRequest struct {
	ID                uint   `json:"id" binding:"required"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	WorkingHoursStart string `json:"workingHoursStart" binding:"omitempty,clock"`
	WorkingHoursEnd   string `json:"workingHoursEnd" binding:"omitempty,clock"`
}

// CampusResponse là DTO cho response của cơ sở
type CampusResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	WorkingHoursStart string    `json:"workingHoursStart"`
	WorkingHoursEnd   string    `json:"workingHoursEnd"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

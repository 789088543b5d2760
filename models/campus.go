package models

import (
	"time"
)

type Campus struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	WorkingHoursStart string    `json:"workingHoursStart"` // Giờ mở cửa, định dạng 15:04
	WorkingHoursEnd   string    `json:"workingHoursEnd"`   // Giờ đóng cửa, định dạng 15:04
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

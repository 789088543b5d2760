package models

import (
	"time"
)

// FacilityIssue sự cố phòng được báo trên một đơn đang sử dụng.
// Vòng đời một chiều: Pending -> RoomChanged hoặc Pending -> Rejected.
type FacilityIssue struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	BookingID             uint      `json:"bookingId" gorm:"index"`
	Booking               *Booking  `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	ReporterID            uint      `json:"reporterId"`
	Description           string    `json:"description" gorm:"type:text"`
	Status                int       `json:"status" gorm:"default:0"` // 0: Pending, 1: RoomChanged, 2: Rejected
	ReplacementFacilityID *uint     `json:"replacementFacilityId,omitempty"`
	AdminID               *uint     `json:"adminId,omitempty"`
	AdminResponse         string    `json:"adminResponse,omitempty" gorm:"type:text"`
	ResolvedAt            *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsResolved sự cố đã được xử lý chưa
func (i *FacilityIssue) IsResolved() bool {
	return i.Status != 0
}

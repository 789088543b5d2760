package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Facility struct {
	FacilityId  uint            `json:"id" gorm:"primaryKey"`
	CampusID    uint            `json:"campusId"`
	Name        string          `json:"name"`
	Type        uint            `json:"type"` // 0: phòng học, 1: phòng lab, 2: hội trường
	Capacity    int             `json:"capacity"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Status      int             `json:"status" gorm:"default:1"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	Equipment   json.RawMessage `json:"equipment" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Campus      Campus          `json:"campus" gorm:"foreignKey:CampusID"`
}

func (f *Facility) ValidateStatus() error {
	if f.Status < 1 || f.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", f.Status)
	}
	return nil
}

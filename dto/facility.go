package dto

import (
	"encoding/json"
	"time"
)

// CreateFacilityRequest tạo phòng mới
type CreateFacilityRequest struct {
	CampusID    uint            `json:"campusId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Type        uint            `json:"type"`
	Capacity    int             `json:"capacity" binding:"required,gt=0"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Equipment   json.RawMessage `json:"equipment"`
}

// UpdateFacilityRequest cập nhật phòng
type UpdateFacilityRequest struct {
	ID          uint            `json:"id" binding:"required"`
	Name        string          `json:"name"`
	Type        uint            `json:"type"`
	Capacity    int             `json:"capacity"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Equipment   json.RawMessage `json:"equipment"`
}

// ChangeFacilityStatusRequest đổi trạng thái khả dụng của phòng
type ChangeFacilityStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status" binding:"required"`
}

// FacilityResponse là DTO cho response của phòng
type FacilityResponse struct {
	ID          uint            `json:"id"`
	CampusID    uint            `json:"campusId"`
	CampusName  string          `json:"campusName,omitempty"`
	Name        string          `json:"name"`
	Type        uint            `json:"type"`
	Capacity    int             `json:"capacity"`
	Acreage     int             `json:"acreage"`
	Description string          `json:"description"`
	Status      int             `json:"status"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Equipment   json.RawMessage `json:"equipment"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ScoredFacility phòng kèm điểm phù hợp khi tìm kiếm gần đúng
type ScoredFacility struct {
	Facility FacilityResponse `json:"facility"`
	Score    int              `json:"score"`
}

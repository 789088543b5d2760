package dto

import "time"

// ReportIssueRequest báo cáo sự cố phòng trong lúc sử dụng
type ReportIssueRequest struct {
	BookingID   uint   `json:"bookingId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ResolveIssueRequest quản trị viên xử lý sự cố: đổi phòng hoặc từ chối
type ResolveIssueRequest struct {
	Approve               bool   `json:"approve"`
	ReplacementFacilityID uint   `json:"replacementFacilityId"`
	Response              string `json:"response"`
}

// IssueResponse là DTO cho response của sự cố
type IssueResponse struct {
	ID          uint       `json:"id"`
	BookingID   uint       `json:"bookingId"`
	ReporterID  uint       `json:"reporterId"`
	Description string     `json:"description"`
	Status      int        `json:"status"`
	Response    string     `json:"response"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

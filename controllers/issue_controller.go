package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fbs/config"
	"fbs/dto"
	"fbs/models"
	"fbs/response"
	"fbs/services"
)

func convertToIssueResponse(issue models.FacilityIssue) dto.IssueResponse {
	return dto.IssueResponse{
		ID:          issue.ID,
		BookingID:   issue.BookingID,
		ReporterID:  issue.ReporterID,
		Description: issue.Description,
		Status:      issue.Status,
		Response:    issue.AdminResponse,
		ResolvedAt:  issue.ResolvedAt,
		CreatedAt:   issue.CreatedAt,
	}
}

// ReportIssue báo cáo sự cố phòng trên một đơn đang sử dụng
func ReportIssue(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.ReportIssueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	issue, err := issueService.Report(c.Request.Context(), request.BookingID, userID, request.Description)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToIssueResponse(*issue))
}

// ResolveIssue quản trị viên xử lý sự cố: đổi sang phòng thay thế cho phần
// thời gian còn lại, hoặc từ chối kèm lý do
func ResolveIssue(c *gin.Context) {
	adminID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	issueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID sự cố không hợp lệ")
		return
	}

	var request dto.ResolveIssueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	issue, err := issueService.Resolve(c.Request.Context(), uint(issueID), adminID, services.ResolveInput{
		Approve:               request.Approve,
		ReplacementFacilityID: request.ReplacementFacilityID,
		Response:              request.Response,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToIssueResponse(*issue))
}

// GetIssueDetail lấy chi tiết một sự cố
func GetIssueDetail(c *gin.Context) {
	var issue models.FacilityIssue
	if err := config.DB.Preload("Booking").First(&issue, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToIssueResponse(issue))
}

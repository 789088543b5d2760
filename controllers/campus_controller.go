package controllers

import (
	"github.com/gin-gonic/gin"

	"fbs/config"
	"fbs/dto"
	"fbs/errors"
	"fbs/models"
	"fbs/response"
	"fbs/validator"
)

func convertToCampusResponse(campus models.Campus) dto.CampusResponse {
	return dto.CampusResponse{
		ID:                campus.ID,
		Name:              campus.Name,
		Address:           campus.Address,
		WorkingHoursStart: campus.WorkingHoursStart,
		WorkingHoursEnd:   campus.WorkingHoursEnd,
		CreatedAt:         campus.CreatedAt,
		UpdatedAt:         campus.UpdatedAt,
	}
}

// GetCampuses lấy tất cả cơ sở
func GetCampuses(c *gin.Context) {
	var campuses []models.Campus
	if err := config.DB.Order("name asc").Find(&campuses).Error; err != nil {
		response.ServerError(c)
		return
	}

	campusResponses := make([]dto.CampusResponse, 0, len(campuses))
	for _, campus := range campuses {
		campusResponses = append(campusResponses, convertToCampusResponse(campus))
	}

	response.Success(c, campusResponses)
}

// CreateCampus tạo cơ sở mới kèm khung giờ làm việc
func CreateCampus(c *gin.Context) {
	var request dto.CreateCampusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	campus := models.Campus{
		Name:              request.Name,
		Address:           request.Address,
		WorkingHoursStart: request.WorkingHoursStart,
		WorkingHoursEnd:   request.WorkingHoursEnd,
	}

	if err := validator.ValidateCampus(&campus); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Create(&campus).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToCampusResponse(campus))
}

// GetDetailCampus lấy chi tiết một cơ sở
func GetDetailCampus(c *gin.Context) {
	var campus models.Campus
	if err := config.DB.First(&campus, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToCampusResponse(campus))
}

// UpdateCampus cập nhật thông tin và khung giờ làm việc của cơ sở
func UpdateCampus(c *gin.Context) {
	var request dto.UpdateCampusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var campus models.Campus
	if err := config.DB.First(&campus, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		campus.Name = request.Name
	}
	if request.Address != "" {
		campus.Address = request.Address
	}
	if request.WorkingHoursStart != "" {
		campus.WorkingHoursStart = request.WorkingHoursStart
	}
	if request.WorkingHoursEnd != "" {
		campus.WorkingHoursEnd = request.WorkingHoursEnd
	}

	if err := validator.ValidateCampus(&campus); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Save(&campus).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToCampusResponse(campus))
}

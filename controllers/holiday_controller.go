package controllers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fbs/config"
	"fbs/dto"
	"fbs/errors"
	"fbs/models"
	"fbs/response"
	"fbs/services"
	"fbs/validator"
)

// GetHolidays lấy tất cả kỳ nghỉ
func GetHolidays(c *gin.Context) {
	var holidays []models.Holiday

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Holiday{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if fromDateStr != "" {
		fromDateComparable, err := time.Parse("02/01/2006", fromDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}

		if toDateStr != "" {
			toDateComparable, err := time.Parse("02/01/2006", toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			tx = tx.Where("SUBSTRING(from_date, 7, 4) || SUBSTRING(from_date, 4, 2) || SUBSTRING(from_date, 1, 2) >= ? AND SUBSTRING(to_date, 7, 4) || SUBSTRING(to_date, 4, 2) || SUBSTRING(to_date, 1, 2) <= ?", fromDateComparable.Format("20060102"), toDateComparable.Format("20060102"))
		} else {
			tx = tx.Where("SUBSTRING(from_date, 7, 4) || SUBSTRING(from_date, 4, 2) || SUBSTRING(from_date, 1, 2) >= ?", fromDateComparable.Format("20060102"))
		}
	}

	var totalHolidays int64
	if err := tx.Count(&totalHolidays).Error; err != nil {
		response.ServerError(c)
		return
	}
	tx = tx.Order("updated_at desc")

	if err := tx.Offset(page * limit).Limit(limit).Find(&holidays).Error; err != nil {
		response.ServerError(c)
		return
	}

	var holidayResponses []dto.HolidayResponse
	for _, holiday := range holidays {
		holidayResponses = append(holidayResponses, dto.HolidayResponse{
			ID:        holiday.ID,
			Name:      holiday.Name,
			FromDate:  holiday.FromDate,
			ToDate:    holiday.ToDate,
			CreatedAt: holiday.CreatedAt,
			UpdatedAt: holiday.UpdatedAt,
		})
	}

	response.SuccessWithPagination(c, holidayResponses, page, limit, int(totalHolidays))
}

// CreateHoliday tạo một kỳ nghỉ mới. Kỳ nghỉ một ngày là khoảng có
// fromDate bằng toDate.
func CreateHoliday(c *gin.Context) {
	var request dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	holiday := models.Holiday{
		Name:      request.Name,
		FromDate:  request.FromDate,
		ToDate:    request.ToDate,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := validator.ValidateHoliday(&holiday); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Create(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "holidays:all")

	response.Success(c, holiday)
}

func GetDetailHoliday(c *gin.Context) {
	var holiday models.Holiday
	if err := config.DB.Where("id = ?", c.Param("id")).First(&holiday).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, holiday)
}

// UpdateHoliday cập nhật một kỳ nghỉ
func UpdateHoliday(c *gin.Context) {
	var holiday models.Holiday
	var request dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&holiday, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		holiday.Name = request.Name
	}
	if request.FromDate != "" {
		holiday.FromDate = request.FromDate
	}
	if request.ToDate != "" {
		holiday.ToDate = request.ToDate
	}
	holiday.UpdatedAt = time.Now()

	if err := validator.ValidateHoliday(&holiday); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Save(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "holidays:all")

	response.Success(c, holiday)
}

func DeleteHoliday(c *gin.Context) {
	if err := config.DB.Delete(&models.Holiday{}, c.Param("id")).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "holidays:all")

	response.Success(c, nil)
}

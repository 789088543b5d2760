package controllers

import (
	"log"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"fbs/config"
	"fbs/constants"
	"fbs/dto"
	"fbs/errors"
	"fbs/models"
	"fbs/response"
	"fbs/services"
	"fbs/validator"
)

func convertToFacilityResponse(facility models.Facility) dto.FacilityResponse {
	return dto.FacilityResponse{
		ID:          facility.FacilityId,
		CampusID:    facility.CampusID,
		CampusName:  facility.Campus.Name,
		Name:        facility.Name,
		Type:        facility.Type,
		Capacity:    facility.Capacity,
		Acreage:     facility.Acreage,
		Description: facility.Description,
		Status:      facility.Status,
		Avatar:      facility.Avatar,
		Img:         facility.Img,
		Equipment:   facility.Equipment,
		CreatedAt:   facility.CreatedAt,
		UpdatedAt:   facility.UpdatedAt,
	}
}

// GetFacilities liệt kê phòng kèm filter và phân trang
func GetFacilities(c *gin.Context) {
	cacheKey := "facilities:all"
	var allFacilities []models.Facility

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &allFacilities); err != nil || len(allFacilities) == 0 {
		if err := config.DB.Preload("Campus").Find(&allFacilities).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, allFacilities, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	campusStr := c.Query("campusId")
	statusStr := c.Query("status")
	capacityStr := c.Query("minCapacity")
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

	filtered := make([]models.Facility, 0, len(allFacilities))
	for _, facility := range allFacilities {
		if nameFilter != "" {
			decodedNameFilter, err := url.QueryUnescape(nameFilter)
			if err == nil && !strings.Contains(normalizeInput(facility.Name), normalizeInput(decodedNameFilter)) {
				continue
			}
		}
		if campusStr != "" {
			campusID, err := strconv.Atoi(campusStr)
			if err != nil || facility.CampusID != uint(campusID) {
				continue
			}
		}
		if statusStr != "" {
			status, err := strconv.Atoi(statusStr)
			if err != nil || facility.Status != status {
				continue
			}
		}
		if capacityStr != "" {
			minCapacity, err := strconv.Atoi(capacityStr)
			if err != nil || facility.Capacity < minCapacity {
				continue
			}
		}
		filtered = append(filtered, facility)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	facilityResponses := make([]dto.FacilityResponse, 0, end-start)
	for _, facility := range filtered[start:end] {
		facilityResponses = append(facilityResponses, convertToFacilityResponse(facility))
	}

	response.SuccessWithPagination(c, facilityResponses, page, limit, total)
}

// CreateFacility tạo phòng mới
func CreateFacility(c *gin.Context) {
	var request dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var campus models.Campus
	if err := config.DB.First(&campus, request.CampusID).Error; err != nil {
		response.BadRequest(c, "Cơ sở không tồn tại")
		return
	}

	facility := models.Facility{
		CampusID:    request.CampusID,
		Name:        request.Name,
		Type:        request.Type,
		Capacity:    request.Capacity,
		Acreage:     request.Acreage,
		Description: request.Description,
		Status:      constants.FacilityStatusAvailable,
		Avatar:      request.Avatar,
		Img:         request.Img,
		Equipment:   request.Equipment,
	}

	if err := validator.ValidateFacility(&facility); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Create(&facility).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "facilities:all")

	facility.Campus = campus
	response.Success(c, convertToFacilityResponse(facility))
}

// GetDetailFacility lấy chi tiết một phòng
func GetDetailFacility(c *gin.Context) {
	var facility models.Facility
	if err := config.DB.Preload("Campus").First(&facility, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToFacilityResponse(facility))
}

// UpdateFacility cập nhật thông tin phòng
func UpdateFacility(c *gin.Context) {
	var request dto.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var facility models.Facility
	if err := config.DB.Preload("Campus").First(&facility, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		facility.Name = request.Name
	}
	if request.Capacity > 0 {
		facility.Capacity = request.Capacity
	}
	if request.Acreage > 0 {
		facility.Acreage = request.Acreage
	}
	if request.Description != "" {
		facility.Description = request.Description
	}
	if request.Avatar != "" {
		facility.Avatar = request.Avatar
	}
	if request.Img != nil {
		facility.Img = request.Img
	}
	if request.Equipment != nil {
		facility.Equipment = request.Equipment
	}
	facility.Type = request.Type

	if err := validator.ValidateFacility(&facility); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.Save(&facility).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "facilities:all")

	response.Success(c, convertToFacilityResponse(facility))
}

// ChangeFacilityStatus đổi trạng thái khả dụng của phòng. Phòng bảo trì hay
// ngưng sử dụng không nhận đơn đặt mới, các đơn đã có không bị động tới.
func ChangeFacilityStatus(c *gin.Context) {
	var request dto.ChangeFacilityStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var facility models.Facility
	if err := config.DB.First(&facility, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	facility.Status = request.Status
	if err := facility.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Save(&facility).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "facilities:all")

	response.Success(c, convertToFacilityResponse(facility))
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Trích số người tham gia từ query, ví dụ "phòng cho 30 người"
func extractCapacityFromQuery(query string) int {
	re := regexp.MustCompile(`(\d+)\s*(nguoi|cho ngoi)`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	capacity, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return capacity
}

// Ánh xạ query sang loại phòng và sức chứa mong muốn
func parseFacilityType(query string) (int, int) {
	classroomKeywords := []string{"phong hoc", "lop hoc", "classroom"}
	labKeywords := []string{"phong lab", "phong thi nghiem", "lab", "thuc hanh"}
	hallKeywords := []string{"hoi truong", "hall", "hoi thao", "su kien"}

	normalizedQuery := normalizeInput(query)
	capacity := extractCapacityFromQuery(normalizedQuery)

	classroomMatcher := createMatcher(classroomKeywords)
	labMatcher := createMatcher(labKeywords)
	hallMatcher := createMatcher(hallKeywords)

	classroomMatch := classroomMatcher.Closest(normalizedQuery)
	labMatch := labMatcher.Closest(normalizedQuery)
	hallMatch := hallMatcher.Closest(normalizedQuery)

	if hallMatch != "" && strings.Contains(normalizedQuery, hallMatch) {
		return 2, capacity
	}
	if labMatch != "" && strings.Contains(normalizedQuery, labMatch) {
		return 1, capacity
	}
	if classroomMatch != "" && strings.Contains(normalizedQuery, classroomMatch) {
		return 0, capacity
	}

	return -1, capacity
}

// Tạo danh sách tên cơ sở duy nhất cho closestmatch
func prepareCampusList(facilities []models.Facility) []string {
	uniqueValues := make(map[string]bool)
	for _, facility := range facilities {
		if facility.Campus.Name != "" {
			uniqueValues[normalizeInput(facility.Campus.Name)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp của một phòng với query tìm kiếm
func calculateFacilityScore(query string, facility models.Facility, cmCampus *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	facilityType, capacity := parseFacilityType(normalizedQuery)
	score := 0

	if facilityType != -1 && uint(facilityType) == facility.Type {
		score += 20
	}
	if capacity != -1 && facility.Capacity >= capacity {
		score += 15
	}

	normalizedName := normalizeInput(facility.Name)
	if strings.Contains(normalizedQuery, normalizedName) || strings.Contains(normalizedName, normalizedQuery) {
		score += 25
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.6 {
		score += 10
	}

	if facility.Campus.Name != "" {
		campusMatch := cmCampus.Closest(normalizedQuery)
		if campusMatch != "" && campusMatch == normalizeInput(facility.Campus.Name) && strings.Contains(normalizedQuery, campusMatch) {
			score += 15
		}
	}

	return score
}

// SearchFacilities tìm phòng gần đúng theo câu truy vấn tự nhiên, ví dụ
// "phòng lab cho 30 người cơ sở quận 9"
func SearchFacilities(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số tìm kiếm q")
		return
	}

	var facilities []models.Facility
	if err := config.DB.Preload("Campus").Where("status = ?", constants.FacilityStatusAvailable).Find(&facilities).Error; err != nil {
		response.ServerError(c)
		return
	}

	cmCampus := createMatcher(prepareCampusList(facilities))

	scored := make([]dto.ScoredFacility, 0, len(facilities))
	for _, facility := range facilities {
		score := calculateFacilityScore(query, facility, cmCampus)
		if score <= 0 {
			continue
		}
		scored = append(scored, dto.ScoredFacility{
			Facility: convertToFacilityResponse(facility),
			Score:    score,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > 20 {
		scored = scored[:20]
	}

	response.Success(c, scored)
}

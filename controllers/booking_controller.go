package controllers

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fbs/config"
	"fbs/constants"
	"fbs/dto"
	"fbs/errors"
	"fbs/models"
	"fbs/response"
	"fbs/services"
)

var bookingService *services.BookingService
var issueService *services.IssueService

// InitControllers nhận các service đã khởi tạo từ main
func InitControllers(b *services.BookingService, i *services.IssueService) {
	bookingService = b
	issueService = i
}

// currentUser lấy userID và role do AuthMiddleware đặt vào context
func currentUser(c *gin.Context) (uint, int, bool) {
	idVal, okID := c.Get("userID")
	roleVal, okRole := c.Get("userRole")
	if !okID || !okRole {
		return 0, constants.RoleNone, false
	}
	userID, okID := idVal.(uint)
	role, okRole := roleVal.(int)
	if !okID || !okRole {
		return 0, constants.RoleNone, false
	}
	return userID, role, true
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:          booking.ID,
		BookingCode: booking.BookingCode,
		Facility: dto.BookingFacilityResponse{
			ID:       booking.Facility.FacilityId,
			CampusID: booking.Facility.CampusID,
			Name:     booking.Facility.Name,
			Capacity: booking.Facility.Capacity,
		},
		BookingDate:    booking.BookingDate,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		RequesterRole:  booking.RequesterRole,
		Participants:   booking.Participants,
		Purpose:        booking.Purpose,
		Note:           booking.Note,
		LecturerEmail:  booking.LecturerEmail,
		Status:         int(booking.Status),
		StatusName:     booking.Status.String(),
		NextApprover:   services.NextApprover(booking.RequesterRole, booking.Status),
		RejectReason:   booking.RejectReason,
		ApproveComment: booking.ApproveComment,
		CancelReason:   booking.CancelReason,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
		CheckedInAt:    booking.CheckedInAt,
		CheckedOutAt:   booking.CheckedOutAt,
	}
	if booking.User != nil {
		resp.User = dto.ActorResponse{
			ID:    booking.User.ID,
			Name:  booking.User.Name,
			Email: booking.User.Email,
			Role:  booking.User.Role,
		}
	}
	return resp
}

// respondBookingError ánh xạ lỗi nghiệp vụ sang mã HTTP và body thống nhất
func respondBookingError(c *gin.Context, err error) {
	if conflictErr := errors.GetConflictError(err); conflictErr != nil {
		response.ConflictRejection(c, string(conflictErr.Code), conflictErr.Message, &response.ConflictWindow{
			StartTime: conflictErr.ConflictStart,
			EndTime:   conflictErr.ConflictEnd,
		})
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodePastDateTime,
			errors.ErrCodeHolidayBlackout,
			errors.ErrCodeOutsideWorkingHours,
			errors.ErrCodeCapacityExceeded:
			response.ConflictRejection(c, string(appErr.Code), appErr.Message, nil)
		case errors.ErrCodeInvalidTransition, errors.ErrCodeCheckInWindow:
			response.Error(c, http.StatusConflict, appErr.Message)
		case errors.ErrCodeNotRequester:
			response.Error(c, http.StatusForbidden, appErr.Message)
		case errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat, errors.ErrCodeValidation, errors.ErrCodeInvalidRole:
			response.BadRequest(c, appErr.Message)
		default:
			response.Error(c, http.StatusBadRequest, appErr.Message)
		}
		return
	}

	switch err {
	case errors.ErrBookingNotFound, errors.ErrFacilityNotFound, errors.ErrUserNotFound, errors.ErrIssueNotFound:
		response.NotFound(c)
	case errors.ErrFacilityNotAvailable:
		response.BadRequest(c, "Phòng hiện không khả dụng để đặt")
	case errors.ErrSlotLockNotAcquired:
		response.Error(c, http.StatusConflict, "Khung giờ đang được xử lý bởi yêu cầu khác, vui lòng thử lại")
	case errors.ErrIssueAlreadyResolved:
		response.Error(c, http.StatusConflict, "Sự cố đã được xử lý trước đó")
	case errors.ErrSameFacility:
		response.BadRequest(c, "Phòng thay thế phải khác phòng gặp sự cố")
	case errors.ErrBookingNotCheckedIn:
		response.Error(c, http.StatusConflict, "Đơn chưa ở trạng thái đang sử dụng phòng")
	default:
		response.ServerError(c)
	}
}

// CreateBooking tạo đơn đặt phòng. Body được bind theo vai trò của người
// gọi: sinh viên bắt buộc gửi kèm email giảng viên hướng dẫn.
func CreateBooking(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input services.BookingInput
	switch role {
	case constants.RoleStudent:
		var request dto.StudentBookingRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.BadRequest(c, "Dữ liệu không hợp lệ")
			return
		}
		input = services.BookingInput{
			FacilityID:    request.FacilityID,
			BookingDate:   request.BookingDate,
			StartTime:     request.StartTime,
			EndTime:       request.EndTime,
			Participants:  request.Participants,
			Purpose:       request.Purpose,
			Note:          request.Note,
			LecturerEmail: request.LecturerEmail,
		}
	case constants.RoleLecturer:
		var request dto.LecturerBookingRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.BadRequest(c, "Dữ liệu không hợp lệ")
			return
		}
		input = services.BookingInput{
			FacilityID:   request.FacilityID,
			BookingDate:  request.BookingDate,
			StartTime:    request.StartTime,
			EndTime:      request.EndTime,
			Participants: request.Participants,
			Purpose:      request.Purpose,
			Note:         request.Note,
		}
	default:
		response.Forbidden(c)
		return
	}

	booking, err := bookingService.Create(c.Request.Context(), userID, role, input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookings liệt kê đơn đặt phòng kèm filter và phân trang. Sinh viên và
// giảng viên chỉ thấy đơn của mình, admin thấy tất cả.
func GetBookings(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	cacheKey := "bookings:all"
	if role != constants.RoleAdmin {
		cacheKey = fmt.Sprintf("bookings:all:user:%d", userID)
	}

	var allBookings []models.Booking

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		baseTx := config.DB.Model(&models.Booking{}).
			Preload("Facility").
			Preload("User")

		if role != constants.RoleAdmin {
			baseTx = baseTx.Where("user_id = ?", userID)
		}

		if err := baseTx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đơn vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusStr := c.Query("status")
	facilityStr := c.Query("facilityId")
	dateFilter := c.Query("bookingDate")
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

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, booking := range allBookings {
		if statusStr != "" {
			status, err := strconv.Atoi(statusStr)
			if err != nil || int(booking.Status) != status {
				continue
			}
		}
		if facilityStr != "" {
			facilityID, err := strconv.Atoi(facilityStr)
			if err != nil || booking.FacilityID != uint(facilityID) {
				continue
			}
		}
		if dateFilter != "" && booking.BookingDate != dateFilter {
			continue
		}
		filtered = append(filtered, booking)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
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

	bookingResponses := make([]dto.BookingResponse, 0, end-start)
	for _, booking := range filtered[start:end] {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// GetBookingDetail lấy chi tiết một đơn đặt phòng
func GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đơn không hợp lệ")
		return
	}

	booking, err := bookingService.GetByID(c.Request.Context(), uint(bookingID))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// GetPendingBookings liệt kê các đơn đang chờ người gọi duyệt
func GetPendingBookings(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookings, err := bookingService.PendingForMe(c.Request.Context(), userID, role)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}

// ApproveBooking duyệt một đơn đang chờ
func ApproveBooking(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.DecisionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.Approve(c.Request.Context(), request.ID, userID, role, request.Comment)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// RejectBooking từ chối một đơn đang chờ, bắt buộc có lý do
func RejectBooking(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.RejectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.Reject(c.Request.Context(), request.ID, userID, role, request.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// CancelBooking hủy đơn của chính mình
func CancelBooking(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CancelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.Cancel(c.Request.Context(), request.ID, userID, request.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// CheckInBooking nhận phòng, trả kèm cảnh báo nếu nhận muộn
func CheckInBooking(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CheckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, warning, err := bookingService.CheckIn(c.Request.Context(), request.ID, userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	if warning != "" {
		response.SuccessWithWarning(c, convertToBookingResponse(*booking), warning)
		return
	}
	response.Success(c, convertToBookingResponse(*booking))
}

// CheckOutBooking trả phòng, quá giờ chỉ cảnh báo
func CheckOutBooking(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CheckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, warning, err := bookingService.CheckOut(c.Request.Context(), request.ID, userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	if warning != "" {
		response.SuccessWithWarning(c, convertToBookingResponse(*booking), warning)
		return
	}
	response.Success(c, convertToBookingResponse(*booking))
}

// GetCheckInGate trả về trạng thái cổng nhận phòng cho UI hiển thị trước
// khi người dùng bấm nhận phòng
func GetCheckInGate(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đơn không hợp lệ")
		return
	}

	booking, err := bookingService.GetByID(c.Request.Context(), uint(bookingID))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	gate := services.CanCheckIn(booking, time.Now())
	response.Success(c, dto.GateResponse{
		BookingID: booking.ID,
		Allowed:   gate.Allowed,
		Reason:    gate.Reason,
		Warning:   gate.Warning,
	})
}

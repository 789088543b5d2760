package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fbs/commands"
	"fbs/constants"
	"fbs/errors"
	"fbs/models"
	"fbs/services/logger"
	"fbs/services/notification"
)

// IssueServiceOptions dependencies của IssueService
type IssueServiceOptions struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
	Logger   logger.Logger
}

// IssueService xử lý báo cáo sự cố phòng và quy trình đổi phòng giữa chừng.
// Đây là chỗ duy nhất phòng/khung giờ của một đơn còn sống bị thay đổi sau
// khi duyệt, nên mọi bước đều đi qua lại bộ kiểm tra trùng lịch.
type IssueService struct {
	db       *gorm.DB
	redis    *redis.Client
	notifier notification.Service
	logger   logger.Logger
}

func NewIssueService(opts IssueServiceOptions) *IssueService {
	return &IssueService{
		db:       opts.DB,
		redis:    opts.Redis,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// ResolveInput quyết định của quản trị viên cho một sự cố
type ResolveInput struct {
	Approve               bool
	ReplacementFacilityID uint
	Response              string
}

// Report tạo báo cáo sự cố trên một đơn đang sử dụng phòng
func (s *IssueService) Report(ctx context.Context, bookingID, reporterID uint, description string) (*models.FacilityIssue, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả sự cố không được để trống", nil)
	}

	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Status != models.BookingStatusCheckedIn {
		return nil, errors.ErrBookingNotCheckedIn
	}
	if booking.UserID != reporterID {
		return nil, errors.NewAppError(errors.ErrCodeNotRequester, "Chỉ người đang sử dụng phòng mới được báo sự cố", nil)
	}

	issue := &models.FacilityIssue{
		BookingID:   bookingID,
		ReporterID:  reporterID,
		Description: strings.TrimSpace(description),
		Status:      constants.IssueStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(issue).Error; err != nil {
		return nil, err
	}

	if err := s.notifier.SendMessage("🔔 Có báo cáo sự cố mới cho đơn " + booking.BookingCode + "."); err != nil {
		s.logger.Error("Gửi thông báo sự cố thất bại: %v", err)
	}
	return issue, nil
}

// applyIssueRejection đóng sự cố một lần với lý do, đơn không bị đụng tới.
// Guard chạy trên bản ghi mới nhất do transaction đọc lại.
func applyIssueRejection(issue *models.FacilityIssue, booking *models.Booking, adminID uint, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Lý do từ chối không được để trống", nil)
	}
	if issue.IsResolved() {
		return errors.ErrIssueAlreadyResolved
	}
	if booking.Status != models.BookingStatusCheckedIn {
		return errors.ErrBookingNotCheckedIn
	}

	issue.Status = constants.IssueStatusRejected
	issue.AdminID = &adminID
	issue.AdminResponse = strings.TrimSpace(reason)
	issue.ResolvedAt = &now
	return nil
}

// applyRoomChange dời đơn sang phòng thay thế cho phần còn lại của khung giờ:
// giờ bắt đầu mới là thời điểm quyết định, giờ kết thúc giữ nguyên, trạng thái
// giữ nguyên CheckedIn. Guard chạy lại ngay trước khi biến đổi.
func applyRoomChange(issue *models.FacilityIssue, booking *models.Booking, replacement *models.Facility, adminID uint, adminResponse string, now time.Time) error {
	if issue.IsResolved() {
		return errors.ErrIssueAlreadyResolved
	}
	if booking.Status != models.BookingStatusCheckedIn {
		return errors.ErrBookingNotCheckedIn
	}
	if replacement.FacilityId == 0 || replacement.FacilityId == booking.FacilityID {
		return errors.ErrSameFacility
	}
	if replacement.Status != constants.FacilityStatusAvailable {
		return errors.ErrFacilityNotAvailable
	}

	end, err := CombineDateTime(booking.BookingDate, booking.EndTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Thời gian của đơn không hợp lệ", err)
	}
	if !now.Before(end) {
		return errors.NewAppError(errors.ErrCodeValidation, "Đơn đã quá giờ kết thúc, không thể đổi phòng", nil)
	}

	booking.FacilityID = replacement.FacilityId
	booking.StartTime = now.Format(ClockLayout)

	replacementID := replacement.FacilityId
	issue.Status = constants.IssueStatusRoomChanged
	issue.AdminID = &adminID
	issue.ReplacementFacilityID = &replacementID
	issue.AdminResponse = strings.TrimSpace(adminResponse)
	issue.ResolvedAt = &now
	return nil
}

// Resolve xử lý sự cố một lần duy nhất. Chấp nhận: kiểm tra phòng thay thế
// cho phần còn lại của đơn [thời điểm quyết định, giờ kết thúc gốc] rồi dời
// đơn sang phòng mới, trạng thái đơn giữ nguyên CheckedIn. Từ chối: sự cố
// đóng với lý do, đơn không bị đụng tới. Toàn bộ chạy dưới khóa theo đơn để
// không đua với một transition khác trên cùng đơn, issue và booking được
// đọc lại và kiểm tra lại trong transaction.
func (s *IssueService) Resolve(ctx context.Context, issueID, adminID uint, input ResolveInput) (*models.FacilityIssue, error) {
	var issue models.FacilityIssue
	if err := s.db.WithContext(ctx).First(&issue, issueID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrIssueNotFound
		}
		return nil, err
	}
	// Chặn sớm, guard chạy lại dưới khóa
	if issue.IsResolved() {
		return nil, errors.ErrIssueAlreadyResolved
	}

	lockKey := BookingLockKey(issue.BookingID)
	acquired, err := AcquireLock(ctx, s.redis, lockKey, slotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.ErrSlotLockNotAcquired
	}
	defer ReleaseLock(ctx, s.redis, lockKey)

	if !input.Approve {
		return s.rejectIssue(ctx, issue.ID, issue.BookingID, adminID, input.Response)
	}
	return s.changeRoom(ctx, issue.ID, issue.BookingID, adminID, input)
}

// rejectIssue đóng sự cố trong một transaction, caller đã giữ khóa đơn
func (s *IssueService) rejectIssue(ctx context.Context, issueID, bookingID, adminID uint, reason string) (*models.FacilityIssue, error) {
	now := time.Now()

	var issue models.FacilityIssue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&issue, issueID).Error; err != nil {
			return errors.ErrIssueNotFound
		}
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return errors.ErrBookingNotFound
		}

		if err := applyIssueRejection(&issue, &booking, adminID, reason, now); err != nil {
			return err
		}
		return commands.NewResolveIssueCommand(&issue, tx).Execute()
	})
	if err != nil {
		return nil, err
	}

	s.notifyResolution(ctx, &issue, false)
	return &issue, nil
}

// changeRoom dời đơn sang phòng thay thế, caller đã giữ khóa đơn. Giữ thêm
// khóa slot của phòng thay thế để hai lần đổi phòng cùng lúc vào cùng một
// phòng không cùng thắng.
func (s *IssueService) changeRoom(ctx context.Context, issueID, bookingID, adminID uint, input ResolveInput) (*models.FacilityIssue, error) {
	if input.ReplacementFacilityID == 0 {
		return nil, errors.ErrSameFacility
	}

	var replacement models.Facility
	if err := s.db.WithContext(ctx).Preload("Campus").First(&replacement, input.ReplacementFacilityID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrFacilityNotFound
		}
		return nil, err
	}

	// Đang giữ khóa đơn nên ngày của đơn không đổi dưới chân mình
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	var holidays []models.Holiday
	if err := s.db.WithContext(ctx).Find(&holidays).Error; err != nil {
		return nil, err
	}

	slotKey := SlotLockKey(input.ReplacementFacilityID, booking.BookingDate)
	acquired, err := AcquireLock(ctx, s.redis, slotKey, slotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.ErrSlotLockNotAcquired
	}
	defer ReleaseLock(ctx, s.redis, slotKey)

	now := time.Now()
	// Phần còn lại của đơn: từ thời điểm quyết định đến giờ kết thúc gốc
	decisionClock := now.Format(ClockLayout)

	var issue models.FacilityIssue
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&issue, issueID).Error; err != nil {
			return errors.ErrIssueNotFound
		}
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return errors.ErrBookingNotFound
		}

		// Chặn sớm trước khi truy vấn trùng lịch, applyRoomChange kiểm tra lại
		if issue.IsResolved() {
			return errors.ErrIssueAlreadyResolved
		}
		if booking.Status != models.BookingStatusCheckedIn {
			return errors.ErrBookingNotCheckedIn
		}

		var live []models.Booking
		if err := tx.Where("facility_id = ? AND booking_date = ? AND status IN ?",
			input.ReplacementFacilityID, booking.BookingDate, models.LiveStatuses()).Find(&live).Error; err != nil {
			return err
		}

		candidate := BookingCandidate{
			FacilityID:   input.ReplacementFacilityID,
			BookingDate:  booking.BookingDate,
			StartTime:    decisionClock,
			EndTime:      booking.EndTime,
			Participants: booking.Participants,
		}
		if err := ValidateReassignmentSlot(candidate, live, replacement.Campus, holidays, replacement); err != nil {
			return err
		}

		if err := applyRoomChange(&issue, &booking, &replacement, adminID, input.Response, now); err != nil {
			return err
		}
		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return err
		}
		return commands.NewResolveIssueCommand(&issue, tx).Execute()
	})
	if err != nil {
		return nil, err
	}

	s.notifyResolution(ctx, &issue, true)
	_ = DeleteFromRedis(ctx, s.redis, "bookings:all")
	return &issue, nil
}

func (s *IssueService) notifyResolution(ctx context.Context, issue *models.FacilityIssue, roomChanged bool) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, issue.BookingID).Error; err != nil {
		return
	}

	message := notification.NewIssueMessageBuilder(booking.BookingCode, roomChanged).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Gửi thông báo kết quả sự cố thất bại: %v", err)
	}

	record := models.Notification{
		UserID:    booking.UserID,
		BookingID: booking.ID,
		Message:   message,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logger.Error("Lưu thông báo kết quả sự cố thất bại: %v", err)
	}
}

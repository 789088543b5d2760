package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fbs/builders"
	"fbs/commands"
	"fbs/constants"
	"fbs/errors"
	"fbs/models"
	"fbs/services/logger"
	"fbs/services/notification"
	"fbs/validator"
)

const slotLockTTL = 5 * time.Second

// BookingServiceOptions dependencies của BookingService
type BookingServiceOptions struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
	Logger   logger.Logger
}

// BookingService xử lý toàn bộ vòng đời của đơn đặt phòng: tạo, duyệt,
// từ chối, hủy, nhận/trả phòng và đánh vắng mặt. Mỗi transition chạy trong
// một transaction sau khi giữ khóa Redis để không có cửa sổ đọc-ghi chen ngang.
type BookingService struct {
	db       *gorm.DB
	redis    *redis.Client
	notifier notification.Service
	logger   logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:       opts.DB,
		redis:    opts.Redis,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// BookingInput dữ liệu đặt phòng đã chuẩn hóa từ tầng controller
type BookingInput struct {
	FacilityID    uint
	BookingDate   string // 02/01/2006
	StartTime     string // 15:04
	EndTime       string // 15:04
	Participants  int
	Purpose       string
	Note          string
	LecturerEmail string // bắt buộc khi người đặt là sinh viên
}

// GenerateBookingCode sinh mã đơn duy nhất, bất biến sau khi tạo
func GenerateBookingCode(now time.Time) string {
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

// NoShowDue đơn Approved đã quá giờ kết thúc mà chưa từng nhận phòng
func NoShowDue(b *models.Booking, now time.Time) bool {
	if b.Status != models.BookingStatusApproved || b.CheckedInAt != nil {
		return false
	}
	end, err := CombineDateTime(b.BookingDate, b.EndTime)
	if err != nil {
		return false
	}
	return now.After(end)
}

// Create tạo đơn đặt phòng mới. Kiểm tra trùng lịch chạy trong transaction
// sau khi giữ khóa theo (phòng, ngày): hai yêu cầu trùng khung giờ chỉ có
// đúng một yêu cầu được chấp nhận.
func (s *BookingService) Create(ctx context.Context, userID uint, role int, input BookingInput) (*models.Booking, error) {
	initialStatus, err := models.InitialStatus(role)
	if err != nil {
		return nil, err
	}
	if role == constants.RoleStudent {
		if strings.TrimSpace(input.LecturerEmail) == "" {
			return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Sinh viên phải cung cấp email giảng viên hướng dẫn", nil)
		}
		if err := validator.ValidateEmail(strings.TrimSpace(input.LecturerEmail)); err != nil {
			return nil, err
		}
	}

	var facility models.Facility
	if err := s.db.WithContext(ctx).Preload("Campus").First(&facility, input.FacilityID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrFacilityNotFound
		}
		return nil, err
	}
	if facility.Status != constants.FacilityStatusAvailable {
		return nil, errors.ErrFacilityNotAvailable
	}

	var holidays []models.Holiday
	if err := s.db.WithContext(ctx).Find(&holidays).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	booking := builders.NewBookingBuilder().
		WithRequester(userID, role).
		WithFacility(input.FacilityID).
		WithSlot(input.BookingDate, input.StartTime, input.EndTime).
		WithParticipants(input.Participants).
		WithPurpose(input.Purpose, input.Note).
		WithLecturerEmail(strings.TrimSpace(input.LecturerEmail)).
		WithStatus(initialStatus).
		WithCode(GenerateBookingCode(now)).
		Build()

	if err := validator.ValidateBookingInput(booking); err != nil {
		return nil, err
	}

	lockKey := SlotLockKey(input.FacilityID, input.BookingDate)
	acquired, err := AcquireLock(ctx, s.redis, lockKey, slotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.ErrSlotLockNotAcquired
	}
	defer ReleaseLock(ctx, s.redis, lockKey)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var live []models.Booking
		if err := tx.Where("facility_id = ? AND booking_date = ? AND status IN ?",
			input.FacilityID, input.BookingDate, models.LiveStatuses()).Find(&live).Error; err != nil {
			return err
		}

		candidate := BookingCandidate{
			FacilityID:   input.FacilityID,
			BookingDate:  input.BookingDate,
			StartTime:    input.StartTime,
			EndTime:      input.EndTime,
			Participants: input.Participants,
		}
		if err := ValidateBookingSlot(candidate, live, facility.Campus, holidays, facility, now); err != nil {
			return err
		}

		return commands.NewCreateBookingCommand(booking, tx).Execute()
	})
	if err != nil {
		return nil, err
	}

	booking.Facility = facility
	s.notifyTransition(ctx, booking)
	s.invalidateCache(ctx, booking)
	return booking, nil
}

// Approve duyệt đơn. Vai trò của người duyệt phải trùng với vai trò duyệt
// kế tiếp do NextApprover suy ra; sai vai trò hay sai trạng thái đều là
// INVALID_TRANSITION.
func (s *BookingService) Approve(ctx context.Context, bookingID, actorID uint, actorRole int, comment string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, func(b *models.Booking, now time.Time) error {
		expected := NextApprover(b.RequesterRole, b.Status)
		if expected == constants.RoleNone || expected != actorRole {
			return errors.NewInvalidTransition(b.Status.String(), "approve")
		}
		if err := models.GetBookingState(b.Status).Approve(b, now); err != nil {
			return err
		}
		switch actorRole {
		case constants.RoleLecturer:
			b.LecturerID = &actorID
		case constants.RoleAdmin:
			b.AdminID = &actorID
		}
		if strings.TrimSpace(comment) != "" {
			b.ApproveComment = strings.TrimSpace(comment)
		}
		return nil
	})
}

// Reject từ chối đơn, bắt buộc có lý do
func (s *BookingService) Reject(ctx context.Context, bookingID, actorID uint, actorRole int, reason string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, func(b *models.Booking, now time.Time) error {
		expected := NextApprover(b.RequesterRole, b.Status)
		if expected == constants.RoleNone || expected != actorRole {
			return errors.NewInvalidTransition(b.Status.String(), "reject")
		}
		if err := models.GetBookingState(b.Status).Reject(b, reason, now); err != nil {
			return err
		}
		switch actorRole {
		case constants.RoleLecturer:
			b.LecturerID = &actorID
		case constants.RoleAdmin:
			b.AdminID = &actorID
		}
		return nil
	})
}

// Cancel hủy đơn, chỉ người đặt mới được hủy
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID uint, reason string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, func(b *models.Booking, now time.Time) error {
		if b.UserID != actorID {
			return errors.NewAppError(errors.ErrCodeNotRequester, "Chỉ người đặt mới được hủy đơn", nil)
		}
		return models.GetBookingState(b.Status).Cancel(b, reason, now)
	})
}

// CheckIn nhận phòng. Cổng thời gian trả về cả cảnh báo không chặn
// (ví dụ nhận phòng muộn) nên warning được trả kèm đơn.
func (s *BookingService) CheckIn(ctx context.Context, bookingID, actorID uint) (*models.Booking, string, error) {
	var warning string
	booking, err := s.transition(ctx, bookingID, func(b *models.Booking, now time.Time) error {
		if b.UserID != actorID {
			return errors.NewAppError(errors.ErrCodeNotRequester, "Chỉ người đặt mới được nhận phòng", nil)
		}
		gate := CanCheckIn(b, now)
		if !gate.Allowed {
			return errors.NewAppError(errors.ErrCodeCheckInWindow, gate.Reason, nil)
		}
		warning = gate.Warning
		return models.GetBookingState(b.Status).CheckIn(b, now)
	})
	return booking, warning, err
}

// CheckOut trả phòng, quá giờ chỉ cảnh báo chứ không chặn
func (s *BookingService) CheckOut(ctx context.Context, bookingID, actorID uint) (*models.Booking, string, error) {
	var warning string
	booking, err := s.transition(ctx, bookingID, func(b *models.Booking, now time.Time) error {
		if b.UserID != actorID {
			return errors.NewAppError(errors.ErrCodeNotRequester, "Chỉ người đặt mới được trả phòng", nil)
		}
		gate := CanCheckOut(b, now)
		if !gate.Allowed {
			return errors.NewAppError(errors.ErrCodeCheckInWindow, gate.Reason, nil)
		}
		warning = gate.Warning
		return models.GetBookingState(b.Status).CheckOut(b, now)
	})
	return booking, warning, err
}

// GetByID lấy đơn theo ID, đồng thời chốt trạng thái vắng mặt nếu đơn
// Approved đã quá giờ mà chưa nhận phòng (đánh giá lười khi đọc)
func (s *BookingService) GetByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("Facility.Campus").Preload("User").First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	if NoShowDue(&booking, time.Now()) {
		refreshed, err := s.markNoShow(ctx, booking.ID)
		if err == nil && refreshed != nil {
			refreshed.Facility = booking.Facility
			refreshed.User = booking.User
			return refreshed, nil
		}
	}
	return &booking, nil
}

// PendingForMe liệt kê các đơn mà vai trò hiện tại là người duyệt kế tiếp.
// Giảng viên chỉ thấy đơn sinh viên gửi đích danh mình qua email hướng dẫn.
func (s *BookingService) PendingForMe(ctx context.Context, actorID uint, actorRole int) ([]models.Booking, error) {
	tx := s.db.WithContext(ctx).Model(&models.Booking{}).Preload("Facility").Preload("User")

	switch actorRole {
	case constants.RoleLecturer:
		var lecturer models.User
		if err := s.db.WithContext(ctx).First(&lecturer, actorID).Error; err != nil {
			return nil, errors.ErrUserNotFound
		}
		tx = tx.Where("status = ? AND lecturer_email = ?", models.BookingStatusWaitingLecturerApproval, lecturer.Email)
	case constants.RoleAdmin:
		tx = tx.Where("status = ?", models.BookingStatusWaitingAdminApproval)
	default:
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err := tx.Order("created_at asc").Find(&bookings).Error; err != nil {
		return nil, err
	}

	// NextApprover là nguồn sự thật, truy vấn ở trên chỉ là thu hẹp trước
	pending := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if NextApprover(b.RequesterRole, b.Status) == actorRole {
			pending = append(pending, b)
		}
	}
	return pending, nil
}

// SweepNoShows quét các đơn Approved đã quá giờ kết thúc mà chưa nhận phòng
// và chuyển sang NoShow. Được cron gọi định kỳ; guard trạng thái chạy lại
// trong transaction để không đua với một lần nhận phòng muộn.
func (s *BookingService) SweepNoShows(ctx context.Context) (int, error) {
	now := time.Now()

	var approved []models.Booking
	if err := s.db.WithContext(ctx).Where("status = ?", models.BookingStatusApproved).Find(&approved).Error; err != nil {
		return 0, err
	}

	swept := 0
	for _, booking := range approved {
		if !NoShowDue(&booking, now) {
			continue
		}
		if _, err := s.markNoShow(ctx, booking.ID); err != nil {
			s.logger.Error("Không thể đánh vắng mặt đơn %d: %v", booking.ID, err)
			continue
		}
		swept++
	}
	return swept, nil
}

// markNoShow chốt NoShow cho một đơn, kiểm tra lại guard trong transaction
func (s *BookingService) markNoShow(ctx context.Context, bookingID uint) (*models.Booking, error) {
	return s.transition(ctx, bookingID, func(b *models.Booking, now time.Time) error {
		if !NoShowDue(b, now) {
			return errors.NewInvalidTransition(b.Status.String(), "no-show")
		}
		return models.GetBookingState(b.Status).MarkNoShow(b, now)
	})
}

// transition thực hiện một chuyển trạng thái nguyên tử: giữ khóa theo đơn,
// đọc trạng thái mới nhất, biến đổi, ghi lại trong cùng một transaction
func (s *BookingService) transition(ctx context.Context, bookingID uint, mutate func(*models.Booking, time.Time) error) (*models.Booking, error) {
	lockKey := BookingLockKey(bookingID)
	acquired, err := AcquireLock(ctx, s.redis, lockKey, slotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.ErrSlotLockNotAcquired
	}
	defer ReleaseLock(ctx, s.redis, lockKey)

	now := time.Now()
	var booking models.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Facility").Preload("User").First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrBookingNotFound
			}
			return err
		}

		if err := mutate(&booking, now); err != nil {
			return err
		}

		return commands.NewUpdateBookingCommand(&booking, tx).Execute()
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, &booking)
	s.invalidateCache(ctx, &booking)
	return &booking, nil
}

// notifyTransition gửi thông báo fire-and-forget: lỗi chỉ log, không làm hỏng transition
func (s *BookingService) notifyTransition(ctx context.Context, booking *models.Booking) {
	message := notification.NewBookingMessageBuilder(booking.BookingCode, booking.Status).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Gửi thông báo cho đơn %s thất bại: %v", booking.BookingCode, err)
	}

	record := models.Notification{
		UserID:    booking.UserID,
		BookingID: booking.ID,
		Message:   message,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logger.Error("Lưu thông báo cho đơn %s thất bại: %v", booking.BookingCode, err)
	}
}

// invalidateCache xóa cache danh sách đơn sau mỗi thay đổi
func (s *BookingService) invalidateCache(ctx context.Context, booking *models.Booking) {
	_ = DeleteFromRedis(ctx, s.redis, "bookings:all")
	_ = DeleteFromRedis(ctx, s.redis, fmt.Sprintf("bookings:all:user:%d", booking.UserID))
}

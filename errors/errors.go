package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Conflict errors: lý do từ chối khi kiểm tra trùng lịch
	ErrCodePastDateTime        ErrorCode = "PAST_DATE_TIME"
	ErrCodeHolidayBlackout     ErrorCode = "HOLIDAY_BLACKOUT"
	ErrCodeOutsideWorkingHours ErrorCode = "OUTSIDE_WORKING_HOURS"
	ErrCodeCapacityExceeded    ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeTimeSlotConflict    ErrorCode = "TIME_SLOT_CONFLICT"

	// Booking errors
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeCheckInWindow     ErrorCode = "CHECK_IN_WINDOW"
	ErrCodeNotRequester      ErrorCode = "NOT_REQUESTER"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ConflictError là lỗi trùng lịch, mang theo khung giờ bị trùng để caller hiển thị
type ConflictError struct {
	AppError
	ConflictStart string
	ConflictEnd   string
}

// NewConflictError tạo lỗi TIME_SLOT_CONFLICT kèm khung giờ bị trùng
func NewConflictError(message, conflictStart, conflictEnd string) *ConflictError {
	return &ConflictError{
		AppError: AppError{
			Code:    ErrCodeTimeSlotConflict,
			Message: message,
		},
		ConflictStart: conflictStart,
		ConflictEnd:   conflictEnd,
	}
}

// GetConflictError lấy ConflictError từ error
func GetConflictError(err error) *ConflictError {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr
	}
	return nil
}

// NewInvalidTransition tạo lỗi INVALID_TRANSITION kèm trạng thái hiện tại và hành động
func NewInvalidTransition(current, action string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("Không thể thực hiện '%s' khi đơn đang ở trạng thái %s", action, current),
	}
}

var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Facility errors
	ErrFacilityNotFound     = errors.New("facility not found")
	ErrFacilityNotAvailable = errors.New("facility not available")
	ErrCampusNotFound       = errors.New("campus not found")

	// Issue errors
	ErrIssueNotFound        = errors.New("facility issue not found")
	ErrIssueAlreadyResolved = errors.New("facility issue already resolved")
	ErrSameFacility         = errors.New("replacement facility must differ from the original")
	ErrBookingNotCheckedIn  = errors.New("booking is not checked in")
	ErrSlotLockNotAcquired  = errors.New("could not acquire slot lock")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

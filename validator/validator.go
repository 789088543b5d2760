package validator

import (
	"fbs/errors"
	"fbs/models"
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

// RegisterCustomValidators đăng ký các tag validate tùy chỉnh cho gin binding
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validatorv10.Validate); ok {
		v.RegisterValidation("bookingdate", func(fl validatorv10.FieldLevel) bool {
			_, err := time.Parse("02/01/2006", fl.Field().String())
			return err == nil
		})
		v.RegisterValidation("clock", func(fl validatorv10.FieldLevel) bool {
			_, err := time.Parse("15:04", fl.Field().String())
			return err == nil
		})
	}
}

// ValidateBookingInput kiểm tra dữ liệu đầu vào của booking
func ValidateBookingInput(booking *models.Booking) error {
	if booking.FacilityID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if _, err := time.Parse("02/01/2006", booking.BookingDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày đặt phòng không hợp lệ", err)
	}

	startTime, err := time.Parse("15:04", booking.StartTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ bắt đầu không hợp lệ", err)
	}

	endTime, err := time.Parse("15:04", booking.EndTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ kết thúc không hợp lệ", err)
	}

	if !endTime.After(startTime) {
		return errors.NewAppError(errors.ErrCodeValidation, "Giờ kết thúc phải sau giờ bắt đầu", nil)
	}

	if booking.Participants <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số người tham gia phải lớn hơn 0", nil)
	}

	if booking.Purpose == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mục đích sử dụng không được để trống", nil)
	}

	return nil
}

// ValidateCampus validate thông tin cơ sở
func ValidateCampus(campus *models.Campus) error {
	if campus.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên cơ sở không được để trống", nil)
	}

	start, err := time.Parse("15:04", campus.WorkingHoursStart)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ mở cửa không hợp lệ", err)
	}

	end, err := time.Parse("15:04", campus.WorkingHoursEnd)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ đóng cửa không hợp lệ", err)
	}

	if !end.After(start) {
		return errors.NewAppError(errors.ErrCodeValidation, "Giờ đóng cửa phải sau giờ mở cửa", nil)
	}

	return nil
}

// ValidateFacility validate thông tin phòng
func ValidateFacility(facility *models.Facility) error {
	if facility.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if facility.CampusID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID cơ sở không được để trống", nil)
	}

	if facility.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải lớn hơn 0", nil)
	}

	if err := facility.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái phòng không hợp lệ", err)
	}

	return nil
}

// ValidateHoliday validate thông tin kỳ nghỉ
func ValidateHoliday(holiday *models.Holiday) error {
	if holiday.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên kỳ nghỉ không được để trống", nil)
	}

	fromDate, err := time.Parse("02/01/2006", holiday.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	toDate, err := time.Parse("02/01/2006", holiday.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if toDate.Before(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

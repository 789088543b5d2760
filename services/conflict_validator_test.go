package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbs/errors"
	"fbs/models"
)

var (
	testCampus = models.Campus{
		ID:                1,
		Name:              "Cơ sở quận 9",
		WorkingHoursStart: "07:00",
		WorkingHoursEnd:   "22:00",
	}
	testFacility = models.Facility{
		FacilityId: 1,
		CampusID:   1,
		Name:       "Phòng A101",
		Capacity:   40,
	}
	testNow = time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
)

func candidateAt(start, end string) BookingCandidate {
	return BookingCandidate{
		FacilityID:   1,
		BookingDate:  "15/10/2026",
		StartTime:    start,
		EndTime:      end,
		Participants: 30,
	}
}

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestValidateBookingSlotOK(t *testing.T) {
	err := ValidateBookingSlot(candidateAt("09:00", "11:00"), nil, testCampus, nil, testFacility, testNow)
	assert.NoError(t, err)
}

func TestValidateBookingSlotEndBeforeStart(t *testing.T) {
	assertCode(t, ValidateBookingSlot(candidateAt("11:00", "09:00"), nil, testCampus, nil, testFacility, testNow), errors.ErrCodeValidation)
	assertCode(t, ValidateBookingSlot(candidateAt("09:00", "09:00"), nil, testCampus, nil, testFacility, testNow), errors.ErrCodeValidation)
}

func TestValidateBookingSlotPast(t *testing.T) {
	late := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	assertCode(t, ValidateBookingSlot(candidateAt("09:00", "11:00"), nil, testCampus, nil, testFacility, late), errors.ErrCodePastDateTime)
}

func TestValidateBookingSlotHoliday(t *testing.T) {
	holidays := []models.Holiday{{Name: "Nghỉ giữa kỳ", FromDate: "14/10/2026", ToDate: "16/10/2026"}}
	assertCode(t, ValidateBookingSlot(candidateAt("09:00", "11:00"), nil, testCampus, holidays, testFacility, testNow), errors.ErrCodeHolidayBlackout)
}

func TestValidateBookingSlotOutsideWorkingHours(t *testing.T) {
	// 06:00 - 07:00 nằm ngoài giờ làm việc dù chạm biên giờ mở cửa
	assertCode(t, ValidateBookingSlot(candidateAt("06:00", "07:00"), nil, testCampus, nil, testFacility, testNow), errors.ErrCodeOutsideWorkingHours)
	assertCode(t, ValidateBookingSlot(candidateAt("21:00", "23:00"), nil, testCampus, nil, testFacility, testNow), errors.ErrCodeOutsideWorkingHours)
}

func TestValidateBookingSlotCapacity(t *testing.T) {
	candidate := candidateAt("09:00", "11:00")
	candidate.Participants = 41
	assertCode(t, ValidateBookingSlot(candidate, nil, testCampus, nil, testFacility, testNow), errors.ErrCodeCapacityExceeded)

	// Bằng đúng sức chứa thì hợp lệ
	candidate.Participants = 40
	assert.NoError(t, ValidateBookingSlot(candidate, nil, testCampus, nil, testFacility, testNow))
}

func TestValidateBookingSlotConflict(t *testing.T) {
	existing := []models.Booking{{
		FacilityID:  1,
		BookingDate: "15/10/2026",
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      models.BookingStatusApproved,
	}}

	err := ValidateBookingSlot(candidateAt("10:30", "11:30"), existing, testCampus, nil, testFacility, testNow)
	require.Error(t, err)
	conflictErr := errors.GetConflictError(err)
	require.NotNil(t, conflictErr)
	assert.Equal(t, errors.ErrCodeTimeSlotConflict, conflictErr.Code)
	assert.Equal(t, "10:00", conflictErr.ConflictStart)
	assert.Equal(t, "11:00", conflictErr.ConflictEnd)
}

func TestValidateBookingSlotTouchingNotConflict(t *testing.T) {
	existing := []models.Booking{{
		FacilityID:  1,
		BookingDate: "15/10/2026",
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      models.BookingStatusApproved,
	}}

	// Kết thúc đúng lúc đơn kia bắt đầu và ngược lại
	assert.NoError(t, ValidateBookingSlot(candidateAt("09:00", "10:00"), existing, testCampus, nil, testFacility, testNow))
	assert.NoError(t, ValidateBookingSlot(candidateAt("11:00", "12:00"), existing, testCampus, nil, testFacility, testNow))
}

func TestValidateBookingSlotIgnoresDeadBookings(t *testing.T) {
	existing := []models.Booking{
		{FacilityID: 1, BookingDate: "15/10/2026", StartTime: "09:00", EndTime: "11:00", Status: models.BookingStatusRejected},
		{FacilityID: 1, BookingDate: "15/10/2026", StartTime: "09:00", EndTime: "11:00", Status: models.BookingStatusCancelled},
		{FacilityID: 1, BookingDate: "15/10/2026", StartTime: "09:00", EndTime: "11:00", Status: models.BookingStatusNoShow},
		{FacilityID: 1, BookingDate: "15/10/2026", StartTime: "09:00", EndTime: "11:00", Status: models.BookingStatusCompleted},
	}

	assert.NoError(t, ValidateBookingSlot(candidateAt("09:30", "10:30"), existing, testCampus, nil, testFacility, testNow))
}

func TestValidateBookingSlotPendingStillBlocks(t *testing.T) {
	// Đơn đang chờ duyệt vẫn giữ chỗ
	existing := []models.Booking{{
		FacilityID:  1,
		BookingDate: "15/10/2026",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Status:      models.BookingStatusWaitingLecturerApproval,
	}}

	err := ValidateBookingSlot(candidateAt("10:00", "12:00"), existing, testCampus, nil, testFacility, testNow)
	assert.NotNil(t, errors.GetConflictError(err))
}

func TestValidateBookingSlotErrorOrder(t *testing.T) {
	// Vừa quá khứ vừa ngày lễ vừa trùng lịch: lỗi quá khứ phải thắng
	holidays := []models.Holiday{{Name: "Lễ", FromDate: "15/10/2026", ToDate: "15/10/2026"}}
	existing := []models.Booking{{
		FacilityID:  1,
		BookingDate: "15/10/2026",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Status:      models.BookingStatusApproved,
	}}
	late := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	assertCode(t, ValidateBookingSlot(candidateAt("09:00", "11:00"), existing, testCampus, holidays, testFacility, late), errors.ErrCodePastDateTime)

	// Không còn quá khứ thì ngày lễ thắng trùng lịch
	assertCode(t, ValidateBookingSlot(candidateAt("09:00", "11:00"), existing, testCampus, holidays, testFacility, testNow), errors.ErrCodeHolidayBlackout)
}

func TestValidateReassignmentSlotSkipsPast(t *testing.T) {
	// Giờ bắt đầu là thời điểm quyết định nên dù đã "qua" vẫn hợp lệ
	existing := []models.Booking{}
	candidate := BookingCandidate{
		FacilityID:   2,
		BookingDate:  "15/10/2026",
		StartTime:    "10:45",
		EndTime:      "12:00",
		Participants: 30,
	}
	replacement := models.Facility{FacilityId: 2, CampusID: 1, Capacity: 35}

	assert.NoError(t, ValidateReassignmentSlot(candidate, existing, testCampus, nil, replacement))
}

func TestValidateReassignmentSlotStillChecksConflict(t *testing.T) {
	existing := []models.Booking{{
		FacilityID:  2,
		BookingDate: "15/10/2026",
		StartTime:   "11:00",
		EndTime:     "13:00",
		Status:      models.BookingStatusApproved,
	}}
	candidate := BookingCandidate{
		FacilityID:   2,
		BookingDate:  "15/10/2026",
		StartTime:    "10:45",
		EndTime:      "12:00",
		Participants: 30,
	}
	replacement := models.Facility{FacilityId: 2, CampusID: 1, Capacity: 35}

	err := ValidateReassignmentSlot(candidate, existing, testCampus, nil, replacement)
	assert.NotNil(t, errors.GetConflictError(err))
}

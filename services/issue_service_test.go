package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbs/constants"
	"fbs/errors"
	"fbs/models"
)

func checkedInBooking() models.Booking {
	checkedInAt := time.Date(2026, 10, 15, 9, 2, 0, 0, time.UTC)
	return models.Booking{
		ID:           42,
		BookingCode:  "BK-20261015-A1B2C3D4",
		UserID:       7,
		FacilityID:   1,
		BookingDate:  "15/10/2026",
		StartTime:    "09:00",
		EndTime:      "12:00",
		Participants: 20,
		Status:       models.BookingStatusCheckedIn,
		CheckedInAt:  &checkedInAt,
	}
}

func pendingIssue() models.FacilityIssue {
	return models.FacilityIssue{
		ID:          3,
		BookingID:   42,
		ReporterID:  7,
		Description: "Máy chiếu hỏng",
		Status:      constants.IssueStatusPending,
	}
}

func availableFacility(id uint) models.Facility {
	return models.Facility{
		FacilityId: id,
		Name:       "Phòng B201",
		Capacity:   40,
		Status:     constants.FacilityStatusAvailable,
	}
}

func TestApplyRoomChangeNarrowsRemainder(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	replacement := availableFacility(2)
	now := time.Date(2026, 10, 15, 10, 45, 0, 0, time.UTC)

	require.NoError(t, applyRoomChange(&issue, &booking, &replacement, 9, "Chuyển sang B201", now))

	// Đơn dời phòng, khung giờ thu hẹp từ thời điểm quyết định
	assert.Equal(t, uint(2), booking.FacilityID)
	assert.Equal(t, "10:45", booking.StartTime)
	assert.Equal(t, "12:00", booking.EndTime)
	assert.Equal(t, models.BookingStatusCheckedIn, booking.Status)
	assert.NotNil(t, booking.CheckedInAt)

	assert.Equal(t, constants.IssueStatusRoomChanged, issue.Status)
	require.NotNil(t, issue.ReplacementFacilityID)
	assert.Equal(t, uint(2), *issue.ReplacementFacilityID)
	require.NotNil(t, issue.AdminID)
	assert.Equal(t, uint(9), *issue.AdminID)
	assert.Equal(t, "Chuyển sang B201", issue.AdminResponse)
	require.NotNil(t, issue.ResolvedAt)
	assert.Equal(t, now, *issue.ResolvedAt)
}

func TestApplyRoomChangeResolvesOnce(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	replacement := availableFacility(2)
	now := time.Date(2026, 10, 15, 10, 45, 0, 0, time.UTC)

	require.NoError(t, applyRoomChange(&issue, &booking, &replacement, 9, "", now))

	// Sự cố đã xử lý thì lần hai phải bị chặn
	other := availableFacility(5)
	err := applyRoomChange(&issue, &booking, &other, 9, "", now.Add(time.Minute))
	assert.ErrorIs(t, err, errors.ErrIssueAlreadyResolved)
	assert.Equal(t, uint(2), booking.FacilityID)
}

func TestApplyRoomChangeRequiresCheckedIn(t *testing.T) {
	// Đơn đã kết thúc thì không được dựng lại qua đổi phòng
	for _, status := range []models.BookingStatus{
		models.BookingStatusApproved,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	} {
		booking := checkedInBooking()
		booking.Status = status
		issue := pendingIssue()
		replacement := availableFacility(2)
		now := time.Date(2026, 10, 15, 10, 45, 0, 0, time.UTC)

		err := applyRoomChange(&issue, &booking, &replacement, 9, "", now)
		assert.ErrorIs(t, err, errors.ErrBookingNotCheckedIn, "status %s", status)
		assert.Equal(t, uint(1), booking.FacilityID, "status %s", status)
		assert.Equal(t, "09:00", booking.StartTime, "status %s", status)
		assert.Equal(t, constants.IssueStatusPending, issue.Status, "status %s", status)
	}
}

func TestApplyRoomChangeRejectsSameFacility(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	replacement := availableFacility(1)
	now := time.Date(2026, 10, 15, 10, 45, 0, 0, time.UTC)

	err := applyRoomChange(&issue, &booking, &replacement, 9, "", now)
	assert.ErrorIs(t, err, errors.ErrSameFacility)
}

func TestApplyRoomChangeRejectsUnavailableFacility(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	replacement := availableFacility(2)
	replacement.Status = 2
	now := time.Date(2026, 10, 15, 10, 45, 0, 0, time.UTC)

	err := applyRoomChange(&issue, &booking, &replacement, 9, "", now)
	assert.ErrorIs(t, err, errors.ErrFacilityNotAvailable)
}

func TestApplyRoomChangeRejectsPastEnd(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	replacement := availableFacility(2)
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	err := applyRoomChange(&issue, &booking, &replacement, 9, "", now)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, uint(1), booking.FacilityID)
	assert.Equal(t, constants.IssueStatusPending, issue.Status)
}

func TestApplyIssueRejection(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	now := time.Date(2026, 10, 15, 10, 45, 0, 0, time.UTC)

	require.NoError(t, applyIssueRejection(&issue, &booking, 9, "Không còn phòng trống", now))

	assert.Equal(t, constants.IssueStatusRejected, issue.Status)
	assert.Equal(t, "Không còn phòng trống", issue.AdminResponse)
	require.NotNil(t, issue.AdminID)
	assert.Equal(t, uint(9), *issue.AdminID)
	require.NotNil(t, issue.ResolvedAt)
	assert.Nil(t, issue.ReplacementFacilityID)

	// Đơn không bị đụng tới
	assert.Equal(t, uint(1), booking.FacilityID)
	assert.Equal(t, "09:00", booking.StartTime)
	assert.Equal(t, models.BookingStatusCheckedIn, booking.Status)

	// Đã đóng thì không đóng lại được
	err := applyIssueRejection(&issue, &booking, 9, "Lý do khác", now.Add(time.Minute))
	assert.ErrorIs(t, err, errors.ErrIssueAlreadyResolved)
}

func TestApplyIssueRejectionRequiresReason(t *testing.T) {
	booking := checkedInBooking()
	issue := pendingIssue()
	now := time.Now()

	err := applyIssueRejection(&issue, &booking, 9, "   ", now)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)
	assert.Equal(t, constants.IssueStatusPending, issue.Status)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbs/constants"
	"fbs/errors"
)

var stateNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func assertInvalidTransition(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidTransition, appErr.Code)
}

func TestInitialStatus(t *testing.T) {
	status, err := InitialStatus(constants.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusWaitingLecturerApproval, status)

	status, err = InitialStatus(constants.RoleLecturer)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusWaitingAdminApproval, status)

	_, err = InitialStatus(constants.RoleAdmin)
	assert.Error(t, err)

	_, err = InitialStatus(constants.RoleNone)
	assert.Error(t, err)
}

func TestWaitingLecturerApprove(t *testing.T) {
	b := &Booking{Status: BookingStatusWaitingLecturerApproval}
	err := GetBookingState(b.Status).Approve(b, stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusWaitingAdminApproval, b.Status)
	require.NotNil(t, b.LecturerDecidedAt)
	assert.Equal(t, stateNow, *b.LecturerDecidedAt)
}

func TestWaitingLecturerReject(t *testing.T) {
	b := &Booking{Status: BookingStatusWaitingLecturerApproval}
	err := GetBookingState(b.Status).Reject(b, "Trùng lịch dạy", stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusRejected, b.Status)
	assert.Equal(t, "Trùng lịch dạy", b.RejectReason)
	assert.NotNil(t, b.LecturerDecidedAt)
}

func TestRejectRequiresReason(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusWaitingLecturerApproval, BookingStatusWaitingAdminApproval} {
		b := &Booking{Status: status}
		err := GetBookingState(b.Status).Reject(b, "   ", stateNow)
		require.Error(t, err, "status %s", status)
		assert.Equal(t, status, b.Status)
	}
}

func TestWaitingAdminApprove(t *testing.T) {
	b := &Booking{Status: BookingStatusWaitingAdminApproval}
	err := GetBookingState(b.Status).Approve(b, stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusApproved, b.Status)
	assert.NotNil(t, b.AdminDecidedAt)
}

func TestCancelRequiresReason(t *testing.T) {
	b := &Booking{Status: BookingStatusApproved}
	err := GetBookingState(b.Status).Cancel(b, "", stateNow)
	require.Error(t, err)
	assert.Equal(t, BookingStatusApproved, b.Status)
}

func TestCancelFromWaitingAdmin(t *testing.T) {
	b := &Booking{Status: BookingStatusWaitingAdminApproval}
	err := GetBookingState(b.Status).Cancel(b, "Đổi kế hoạch", stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCancelled, b.Status)
	assert.Equal(t, "Đổi kế hoạch", b.CancelReason)
	assert.NotNil(t, b.CancelledAt)
}

func TestCancelFromApproved(t *testing.T) {
	b := &Booking{Status: BookingStatusApproved}
	err := GetBookingState(b.Status).Cancel(b, "Hết nhu cầu", stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCancelled, b.Status)
}

func TestCheckInFromApproved(t *testing.T) {
	b := &Booking{Status: BookingStatusApproved}
	err := GetBookingState(b.Status).CheckIn(b, stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCheckedIn, b.Status)
	require.NotNil(t, b.CheckedInAt)
	assert.Equal(t, stateNow, *b.CheckedInAt)
}

func TestCheckOutFromCheckedIn(t *testing.T) {
	checkedInAt := stateNow.Add(-time.Hour)
	b := &Booking{Status: BookingStatusCheckedIn, CheckedInAt: &checkedInAt}
	err := GetBookingState(b.Status).CheckOut(b, stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCompleted, b.Status)
	assert.NotNil(t, b.CheckedOutAt)
}

func TestMarkNoShowFromApproved(t *testing.T) {
	b := &Booking{Status: BookingStatusApproved}
	err := GetBookingState(b.Status).MarkNoShow(b, stateNow)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusNoShow, b.Status)
}

func TestMarkNoShowBlockedAfterCheckIn(t *testing.T) {
	checkedInAt := stateNow.Add(-time.Hour)
	b := &Booking{Status: BookingStatusApproved, CheckedInAt: &checkedInAt}
	assertInvalidTransition(t, GetBookingState(b.Status).MarkNoShow(b, stateNow))
	assert.Equal(t, BookingStatusApproved, b.Status)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	terminals := []BookingStatus{
		BookingStatusRejected,
		BookingStatusCancelled,
		BookingStatusCompleted,
		BookingStatusNoShow,
	}

	for _, status := range terminals {
		b := &Booking{Status: status}
		state := GetBookingState(status)

		assertInvalidTransition(t, state.Approve(b, stateNow))
		assertInvalidTransition(t, state.Reject(b, "lý do", stateNow))
		assertInvalidTransition(t, state.Cancel(b, "lý do", stateNow))
		assertInvalidTransition(t, state.CheckIn(b, stateNow))
		assertInvalidTransition(t, state.CheckOut(b, stateNow))
		assertInvalidTransition(t, state.MarkNoShow(b, stateNow))
		assert.Equal(t, status, b.Status)
	}
}

func TestInvalidTransitionsFromLiveStates(t *testing.T) {
	// Không được nhận phòng khi chưa duyệt xong
	b := &Booking{Status: BookingStatusWaitingLecturerApproval}
	assertInvalidTransition(t, GetBookingState(b.Status).CheckIn(b, stateNow))

	b = &Booking{Status: BookingStatusWaitingAdminApproval}
	assertInvalidTransition(t, GetBookingState(b.Status).CheckIn(b, stateNow))

	// Không được duyệt đơn đã duyệt
	b = &Booking{Status: BookingStatusApproved}
	assertInvalidTransition(t, GetBookingState(b.Status).Approve(b, stateNow))

	// Đang sử dụng thì không hủy, không duyệt, không vắng mặt
	b = &Booking{Status: BookingStatusCheckedIn}
	state := GetBookingState(b.Status)
	assertInvalidTransition(t, state.Cancel(b, "lý do", stateNow))
	assertInvalidTransition(t, state.Approve(b, stateNow))
	assertInvalidTransition(t, state.MarkNoShow(b, stateNow))
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, BookingStatusApproved.IsLive())
	assert.True(t, BookingStatusWaitingLecturerApproval.IsLive())
	assert.False(t, BookingStatusRejected.IsLive())
	assert.False(t, BookingStatusCompleted.IsLive())

	assert.True(t, BookingStatusNoShow.IsTerminal())
	assert.False(t, BookingStatusCheckedIn.IsTerminal())

	assert.Len(t, LiveStatuses(), 4)
	assert.Equal(t, "WAITING_LECTURER_APPROVAL", BookingStatusWaitingLecturerApproval.String())
	assert.Equal(t, "NO_SHOW", BookingStatusNoShow.String())
}

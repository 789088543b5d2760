package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fbs/constants"
	"fbs/models"
)

func TestNextApprover(t *testing.T) {
	tests := []struct {
		name          string
		requesterRole int
		status        models.BookingStatus
		want          int
	}{
		{"sinh viên chờ giảng viên", constants.RoleStudent, models.BookingStatusWaitingLecturerApproval, constants.RoleLecturer},
		{"sinh viên chờ admin", constants.RoleStudent, models.BookingStatusWaitingAdminApproval, constants.RoleAdmin},
		{"giảng viên chờ admin", constants.RoleLecturer, models.BookingStatusWaitingAdminApproval, constants.RoleAdmin},
		{"giảng viên không bao giờ chờ giảng viên", constants.RoleLecturer, models.BookingStatusWaitingLecturerApproval, constants.RoleNone},
		{"đơn đã duyệt không còn người duyệt", constants.RoleStudent, models.BookingStatusApproved, constants.RoleNone},
		{"đơn bị từ chối không còn người duyệt", constants.RoleStudent, models.BookingStatusRejected, constants.RoleNone},
		{"đơn đã hủy không còn người duyệt", constants.RoleLecturer, models.BookingStatusCancelled, constants.RoleNone},
		{"đơn đang sử dụng không còn người duyệt", constants.RoleStudent, models.BookingStatusCheckedIn, constants.RoleNone},
		{"đơn hoàn tất không còn người duyệt", constants.RoleLecturer, models.BookingStatusCompleted, constants.RoleNone},
		{"đơn vắng mặt không còn người duyệt", constants.RoleStudent, models.BookingStatusNoShow, constants.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextApprover(tt.requesterRole, tt.status))
		})
	}
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fbs/models"
)

func TestValidateBookingInput(t *testing.T) {
	valid := models.Booking{
		FacilityID:   1,
		BookingDate:  "15/10/2026",
		StartTime:    "09:00",
		EndTime:      "11:00",
		Participants: 30,
		Purpose:      "Họp nhóm đồ án",
	}

	assert.NoError(t, ValidateBookingInput(&valid))

	b := valid
	b.FacilityID = 0
	assert.Error(t, ValidateBookingInput(&b))

	b = valid
	b.BookingDate = "2026-10-15"
	assert.Error(t, ValidateBookingInput(&b))

	b = valid
	b.EndTime = "09:00"
	assert.Error(t, ValidateBookingInput(&b))

	b = valid
	b.Participants = 0
	assert.Error(t, ValidateBookingInput(&b))

	b = valid
	b.Purpose = ""
	assert.Error(t, ValidateBookingInput(&b))
}

func TestValidateCampus(t *testing.T) {
	valid := models.Campus{
		Name:              "Cơ sở quận 9",
		WorkingHoursStart: "07:00",
		WorkingHoursEnd:   "22:00",
	}

	assert.NoError(t, ValidateCampus(&valid))

	c := valid
	c.Name = ""
	assert.Error(t, ValidateCampus(&c))

	c = valid
	c.WorkingHoursEnd = "06:00"
	assert.Error(t, ValidateCampus(&c))

	c = valid
	c.WorkingHoursStart = "7h"
	assert.Error(t, ValidateCampus(&c))
}

func TestValidateFacility(t *testing.T) {
	valid := models.Facility{
		Name:     "Phòng A101",
		CampusID: 1,
		Capacity: 40,
		Status:   1,
	}

	assert.NoError(t, ValidateFacility(&valid))

	f := valid
	f.Capacity = 0
	assert.Error(t, ValidateFacility(&f))

	f = valid
	f.Status = 9
	assert.Error(t, ValidateFacility(&f))
}

func TestValidateHoliday(t *testing.T) {
	valid := models.Holiday{
		Name:     "Tết",
		FromDate: "16/02/2026",
		ToDate:   "22/02/2026",
	}

	assert.NoError(t, ValidateHoliday(&valid))

	// Kỳ nghỉ một ngày
	oneDay := models.Holiday{Name: "Quốc khánh", FromDate: "02/09/2026", ToDate: "02/09/2026"}
	assert.NoError(t, ValidateHoliday(&oneDay))

	h := valid
	h.ToDate = "15/02/2026"
	assert.Error(t, ValidateHoliday(&h))

	h = valid
	h.FromDate = "2026-02-16"
	assert.Error(t, ValidateHoliday(&h))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("gv.nguyen@uni.edu.vn"))
	assert.Error(t, ValidateEmail("khong-phai-email"))
}

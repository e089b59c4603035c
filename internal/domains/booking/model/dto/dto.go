package dto

import (
	"dronline/internal/domains/booking/model"
	"dronline/shared"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/timezone"
	"time"
)

type UpdateBookingRequest struct {
	DoctorID      *string    `db:"doctor_id"      json:"doctor_id"      validate:"omitempty,uuid"`
	Status        string     `db:"status"         json:"status"         validate:"omitempty,oneof=booked in-progress completed cancelled"`
	ScheduledDate *time.Time `db:"scheduled_date" json:"scheduled_date" validate:"omitempty"`
	Notes         *string    `db:"notes"          json:"notes"          validate:"omitempty,max=2000"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	PatientID        *string `json:"patient_id,omitempty"`
	PatientName      *string `json:"patient_name,omitempty"`
	ModeratorID      string  `json:"moderator_id"`
	ModeratorName    *string `json:"moderator_name,omitempty"`
	DoctorID         *string `json:"doctor_id,omitempty"`
	ContactRequestID string  `json:"contact_request_id"`
	Topic            string  `json:"topic"`
	Status           string  `json:"status"`
	ScheduledDate    *string `json:"scheduled_date,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.ModeratorBooking) {
	r.ID = mod.ID
	r.PatientID = mod.PatientID
	r.PatientName = mod.PatientName
	r.ModeratorID = mod.ModeratorID
	r.ModeratorName = mod.ModeratorName
	r.DoctorID = mod.DoctorID
	r.ContactRequestID = mod.ContactRequestID
	r.Topic = mod.Topic
	r.Status = mod.Status
	r.Notes = mod.Notes

	if mod.ScheduledDate != nil {
		scheduled := timezone.Format(*mod.ScheduledDate, constant.DateFormat)
		r.ScheduledDate = &scheduled
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.ModeratorBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

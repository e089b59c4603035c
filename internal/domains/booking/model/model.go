package model

import (
	"dronline/shared/model"
	"time"
)

const (
	TableName  = "moderator_bookings"
	EntityName = "moderator_booking"

	FieldID               = "id"
	FieldPatientID        = "patient_id"
	FieldModeratorID      = "moderator_id"
	FieldDoctorID         = "doctor_id"
	FieldContactRequestID = "contact_request_id"
	FieldTopic            = "topic"
	FieldStatus           = "status"
	FieldScheduledDate    = "scheduled_date"
	FieldNotes            = "notes"
)

const (
	StatusBooked     = "booked"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type ModeratorBooking struct {
	ID               string     `db:"id"`
	PatientID        *string    `db:"patient_id"`
	ModeratorID      string     `db:"moderator_id"`
	DoctorID         *string    `db:"doctor_id"`
	ContactRequestID string     `db:"contact_request_id"`
	Topic            string     `db:"topic"`
	Status           string     `db:"status"`
	ScheduledDate    *time.Time `db:"scheduled_date"`
	Notes            *string    `db:"notes"`

	ModeratorName *string `db:"moderator_name" table:"moderators" column:"full_name"`
	PatientName   *string `db:"patient_name"   table:"patients"   column:"full_name"`
	model.Metadata
}

// GetJoinQuery resolves moderator and patient display names for list reads.
func (ModeratorBooking) GetJoinQuery() string {
	return `LEFT JOIN users moderators ON moderator_bookings.moderator_id = moderators.id
		LEFT JOIN users patients ON moderator_bookings.patient_id = patients.id`
}

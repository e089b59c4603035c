package model

import (
	"dronline/shared/model"
	"time"
)

const (
	TableName  = "contact_requests"
	EntityName = "contact_request"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldSubject     = "subject"
	FieldMessage     = "message"
	FieldRequestType = "request_type"
	FieldStatus      = "status"
	FieldPatientID   = "patient_id"
	FieldModeratorID = "moderator_id"
	FieldDoctorID    = "doctor_id"
)

const (
	ReplyTableName  = "contact_replies"
	ReplyEntityName = "contact_reply"

	ReplyFieldID        = "id"
	ReplyFieldRequestID = "request_id"
	ReplyFieldSenderID  = "sender_id"
)

const (
	RequestTypeConsultation = "consultation"
	RequestTypeQuestion     = "question"
	RequestTypeFeedback     = "feedback"
	RequestTypeBooking      = "booking"
)

const (
	StatusPending           = "pending"
	StatusAcknowledged      = "acknowledged"
	StatusModeratorAssigned = "moderator-assigned"
	StatusDoctorAssigned    = "doctor-assigned"
	StatusResolved          = "resolved"
)

type ContactRequest struct {
	ID          string  `db:"id"`
	FullName    string  `db:"full_name"`
	Email       string  `db:"email"`
	PhoneNumber string  `db:"phone_number"`
	Subject     string  `db:"subject"`
	Message     string  `db:"message"`
	RequestType string  `db:"request_type"`
	Status      string  `db:"status"`
	PatientID   *string `db:"patient_id"`
	ModeratorID *string `db:"moderator_id"`
	DoctorID    *string `db:"doctor_id"`

	ModeratorName  *string `db:"moderator_name"  table:"moderators" column:"full_name"`
	ModeratorEmail *string `db:"moderator_email" table:"moderators" column:"email"`
	DoctorName     *string `db:"doctor_name"     table:"doctors"    column:"full_name"`
	DoctorEmail    *string `db:"doctor_email"    table:"doctors"    column:"email"`
	PatientName    *string `db:"patient_name"    table:"patients"   column:"full_name"`
	model.Metadata
}

// GetJoinQuery resolves the assigned moderator, doctor and patient display
// fields in a single read. Picked up reflectively by the generic repository.
func (ContactRequest) GetJoinQuery() string {
	return `LEFT JOIN users moderators ON contact_requests.moderator_id = moderators.id
		LEFT JOIN users doctors ON contact_requests.doctor_id = doctors.id
		LEFT JOIN users patients ON contact_requests.patient_id = patients.id`
}

type Reply struct {
	ID         string    `db:"id"`
	RequestID  string    `db:"request_id"`
	SenderID   string    `db:"sender_id"`
	SenderRole string    `db:"sender_role"`
	Message    string    `db:"message"`
	CreatedAt  time.Time `db:"created_at"`

	SenderName *string `db:"sender_name" table:"senders" column:"full_name"`
}

func (Reply) GetJoinQuery() string {
	return "LEFT JOIN users senders ON contact_replies.sender_id = senders.id"
}

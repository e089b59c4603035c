package dto

import (
	bookingDto "dronline/internal/domains/booking/model/dto"
	"dronline/internal/domains/contact/model"
	"dronline/shared"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"

	"github.com/google/uuid"
)

type SubmitContactRequest struct {
	FullName    string  `json:"full_name"    validate:"required,min=2,max=100"`
	Email       string  `json:"email"        validate:"required,email"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=30"`
	Subject     string  `json:"subject"      validate:"required,max=200"`
	Message     string  `json:"message"      validate:"required,min=10"`
	RequestType string  `json:"request_type" validate:"omitempty,oneof=consultation question feedback booking"`
	PatientID   *string `json:"patient_id"   validate:"omitempty,uuid"`
}

func (r *SubmitContactRequest) ToModel(username string) model.ContactRequest {
	requestType := r.RequestType
	if requestType == "" {
		requestType = model.RequestTypeConsultation
	}

	return model.ContactRequest{
		ID:          uuid.NewString(),
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Subject:     r.Subject,
		Message:     r.Message,
		RequestType: requestType,
		Status:      model.StatusPending,
		PatientID:   r.PatientID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type AssignDoctorRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
}

type AddReplyRequest struct {
	Message string `json:"message" validate:"required"`
}

func (r *AddReplyRequest) ToModel(requestID, senderID, senderRole string) model.Reply {
	return model.Reply{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		SenderID:   senderID,
		SenderRole: senderRole,
		Message:    r.Message,
		CreatedAt:  timezone.Now(),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending acknowledged moderator-assigned doctor-assigned resolved"`
}

type ContactResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	Subject        string  `json:"subject"`
	Message        string  `json:"message"`
	RequestType    string  `json:"request_type"`
	Status         string  `json:"status"`
	PatientID      *string `json:"patient_id,omitempty"`
	PatientName    *string `json:"patient_name,omitempty"`
	ModeratorID    *string `json:"moderator_id,omitempty"`
	ModeratorName  *string `json:"moderator_name,omitempty"`
	ModeratorEmail *string `json:"moderator_email,omitempty"`
	DoctorID       *string `json:"doctor_id,omitempty"`
	DoctorName     *string `json:"doctor_name,omitempty"`
	DoctorEmail    *string `json:"doctor_email,omitempty"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(mod model.ContactRequest) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.Email = mod.Email
	r.PhoneNumber = mod.PhoneNumber
	r.Subject = mod.Subject
	r.Message = mod.Message
	r.RequestType = mod.RequestType
	r.Status = mod.Status
	r.PatientID = mod.PatientID
	r.PatientName = mod.PatientName
	r.ModeratorID = mod.ModeratorID
	r.ModeratorName = mod.ModeratorName
	r.ModeratorEmail = mod.ModeratorEmail
	r.DoctorID = mod.DoctorID
	r.DoctorName = mod.DoctorName
	r.DoctorEmail = mod.DoctorEmail
	r.Metadata.FromModel(mod.Metadata)
}

type ReplyResponse struct {
	ID         string  `json:"id"`
	RequestID  string  `json:"request_id"`
	SenderID   string  `json:"sender_id"`
	SenderName *string `json:"sender_name,omitempty"`
	SenderRole string  `json:"sender_role"`
	Message    string  `json:"message"`
	CreatedAt  string  `json:"created_at"`
}

func (r *ReplyResponse) FromModel(mod model.Reply) {
	r.ID = mod.ID
	r.RequestID = mod.RequestID
	r.SenderID = mod.SenderID
	r.SenderName = mod.SenderName
	r.SenderRole = mod.SenderRole
	r.Message = mod.Message
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type ContactDetailResponse struct {
	ContactResponse
	Replies []ReplyResponse `json:"replies"`
}

func (r *ContactDetailResponse) FromModels(mod model.ContactRequest, replies []model.Reply) {
	r.ContactResponse.FromModel(mod)

	r.Replies = make([]ReplyResponse, len(replies))
	for i, reply := range replies {
		r.Replies[i].FromModel(reply)
	}
}

type BookModeratorResponse struct {
	Request ContactResponse            `json:"request"`
	Booking bookingDto.BookingResponse `json:"booking"`
}

type GetContactsResponse struct {
	Requests  []ContactResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.ContactRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}

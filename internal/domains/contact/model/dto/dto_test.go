package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dronline/internal/domains/contact/model"
	"dronline/internal/domains/contact/model/dto"
	"dronline/shared/constant"
	"dronline/shared/validator"
)

func submitBody(message string) string {
	return `{
		"full_name": "Jane Patient",
		"email": "jane@example.com",
		"phone_number": "+4712345678",
		"subject": "Chronic headaches",
		"message": "` + message + `"
	}`
}

func TestSubmitContactRequest_Validate(t *testing.T) {
	t.Run("accepts a well-formed submission", func(t *testing.T) {
		var req dto.SubmitContactRequest

		err := validator.Validate(strings.NewReader(submitBody("I have been having headaches for two weeks now.")), &req)

		assert.NoError(t, err)
	})

	t.Run("rejects a message shorter than 10 characters", func(t *testing.T) {
		var req dto.SubmitContactRequest

		err := validator.Validate(strings.NewReader(submitBody("too short")), &req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Message must be greater than or equal to 10")
	})

	t.Run("rejects an unknown request type", func(t *testing.T) {
		var req dto.SubmitContactRequest

		err := validator.Validate(strings.NewReader(`{
			"full_name": "Jane Patient",
			"email": "jane@example.com",
			"phone_number": "+4712345678",
			"subject": "Chronic headaches",
			"message": "I have been having headaches for two weeks now.",
			"request_type": "emergency"
		}`), &req)

		assert.Error(t, err)
	})
}

func TestSubmitContactRequest_ToModel(t *testing.T) {
	req := dto.SubmitContactRequest{
		FullName:    "Jane Patient",
		Email:       "jane@example.com",
		PhoneNumber: "+4712345678",
		Subject:     "Chronic headaches",
		Message:     "I have been having headaches for two weeks now.",
	}

	result := req.ToModel(constant.ContextGuest)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, model.StatusPending, result.Status)
	assert.Equal(t, model.RequestTypeConsultation, result.RequestType)
	assert.Equal(t, constant.ContextGuest, result.Metadata.CreatedBy)
}

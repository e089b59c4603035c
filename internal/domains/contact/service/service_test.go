package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dronline/config"
	kafkaMocks "dronline/infras/kafka/mocks"
	"dronline/infras/otel/mocks"
	txMocks "dronline/infras/postgres/mocks"
	bookingMocks "dronline/internal/domains/booking/mocks"
	bookingModel "dronline/internal/domains/booking/model"
	contactMocks "dronline/internal/domains/contact/mocks"
	"dronline/internal/domains/contact/model"
	"dronline/internal/domains/contact/model/dto"
	"dronline/internal/domains/contact/service"
	notifMocks "dronline/internal/domains/notification/mocks"
	notifModel "dronline/internal/domains/notification/model"
	userMocks "dronline/internal/domains/user/mocks"
	userModel "dronline/internal/domains/user/model"
	cacheMocks "dronline/shared/cache/mocks"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	gModel "dronline/shared/model"
	"dronline/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type fixture struct {
	contactRepo *contactMocks.MockContact
	bookingRepo *bookingMocks.MockBooking
	userRepo    *userMocks.MockUser
	notifRepo   *notifMocks.MockNotification
	svc         service.Contact
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	contactRepo := contactMocks.NewMockContact(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	userRepo := userMocks.NewMockUser(ctrl)
	notifRepo := notifMocks.NewMockNotification(ctrl)

	svc := service.New(
		contactRepo,
		bookingRepo,
		userRepo,
		notifRepo,
		txMocks.NewTransactor(),
		kafkaMocks.NewClient(),
		&config.Config{},
		cacheMocks.NewRedisCache(),
		mocks.NewOtel(),
	)

	return fixture{
		contactRepo: contactRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		svc:         svc,
	}
}

func pendingRequest() model.ContactRequest {
	return model.ContactRequest{
		ID:          "request-id-123",
		FullName:    "Jane Patient",
		Email:       "jane@example.com",
		PhoneNumber: "+4712345678",
		Subject:     "Chronic headaches",
		Message:     "I have been having headaches for two weeks now.",
		RequestType: model.RequestTypeConsultation,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

func moderatorUser() userModel.User {
	return userModel.User{
		ID:       "moderator-id-1",
		Email:    "moderator@example.com",
		FullName: "Mod Erator",
		Role:     constant.RoleAdmin,
		Active:   true,
	}
}

func TestContactService_Submit(t *testing.T) {
	f := newFixture(t)

	req := dto.SubmitContactRequest{
		FullName:    "Jane Patient",
		Email:       "jane@example.com",
		PhoneNumber: "+4712345678",
		Subject:     "Chronic headaches",
		Message:     "I have been having headaches for two weeks now.",
	}

	t.Run("anonymous submission starts pending", func(t *testing.T) {
		f.contactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request model.ContactRequest) error {
				assert.Equal(t, model.StatusPending, request.Status)
				assert.Equal(t, model.RequestTypeConsultation, request.RequestType)
				assert.Equal(t, constant.ContextGuest, request.CreatedBy)
				assert.NotEmpty(t, request.ID)

				return nil
			})

		res, err := f.svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("authenticated submission records the caller", func(t *testing.T) {
		f.contactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request model.ContactRequest) error {
				assert.Equal(t, "patient-id-9", request.CreatedBy)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "patient-id-9")
		_, err := f.svc.Submit(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("insert error", func(t *testing.T) {
		f.contactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := f.svc.Submit(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestContactService_AssignModerator(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-1")

	t.Run("assigns first candidate and books atomically", func(t *testing.T) {
		f := newFixture(t)
		request := pendingRequest()
		moderator := moderatorUser()

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(request, nil)

		f.userRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]userModel.User{moderator, {ID: "moderator-id-2"}}, nil)

		// Anonymous request resolved against the user directory by email.
		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "patient-id-9", Email: request.Email}, nil)

		f.contactRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, moderator.ID, fields[model.FieldModeratorID])
				assert.Equal(t, model.StatusModeratorAssigned, fields[model.FieldStatus])

				return nil
			})

		f.bookingRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking bookingModel.ModeratorBooking) error {
				assert.Equal(t, moderator.ID, booking.ModeratorID)
				assert.Equal(t, request.ID, booking.ContactRequestID)
				assert.Equal(t, request.Subject, booking.Topic)
				assert.Equal(t, bookingModel.StatusBooked, booking.Status)
				assert.Equal(t, "patient-id-9", *booking.PatientID)

				return nil
			})

		f.notifRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, notifications []notifModel.Notification) error {
				assert.Len(t, notifications, 2)
				assert.Equal(t, request.Email, notifications[0].Recipient)
				assert.Equal(t, moderator.Email, notifications[1].Recipient)
				assert.Equal(t, notifModel.StatusPending, notifications[0].Status)

				return nil
			})

		res, err := f.svc.AssignModerator(ctx, request.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusModeratorAssigned, res.Request.Status)
		assert.Equal(t, moderator.ID, *res.Request.ModeratorID)
		assert.Equal(t, moderator.ID, res.Booking.ModeratorID)
	})

	t.Run("request not found", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactRequest{}, nil)

		_, err := f.svc.AssignModerator(ctx, "missing-id")

		assert.Error(t, err)
	})

	t.Run("no moderators available", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingRequest(), nil)

		f.userRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]userModel.User{}, nil)

		_, err := f.svc.AssignModerator(ctx, "request-id-123")

		assert.Error(t, err)
	})

	t.Run("transaction failure surfaces", func(t *testing.T) {
		f := newFixture(t)
		request := pendingRequest()
		patientID := "patient-id-9"
		request.PatientID = &patientID

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(request, nil)

		f.userRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]userModel.User{moderatorUser()}, nil)

		f.contactRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := f.svc.AssignModerator(ctx, request.ID)

		assert.Error(t, err)
	})
}

func TestContactService_AssignDoctor(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-1")

	t.Run("assigns doctor and queues referral", func(t *testing.T) {
		f := newFixture(t)
		request := pendingRequest()
		doctor := userModel.User{
			ID:       "doctor-id-1",
			Email:    "doctor@example.com",
			FullName: "Doc Tor",
			Role:     constant.RoleDoctor,
		}

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(request, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(doctor, nil)

		f.contactRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, doctor.ID, fields[model.FieldDoctorID])
				assert.Equal(t, model.StatusDoctorAssigned, fields[model.FieldStatus])

				return nil
			})

		f.notifRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, notification notifModel.Notification) error {
				assert.Equal(t, doctor.Email, notification.Recipient)

				return nil
			})

		res, err := f.svc.AssignDoctor(ctx, request.ID, dto.AssignDoctorRequest{DoctorID: doctor.ID})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusDoctorAssigned, res.Status)
		assert.Equal(t, doctor.ID, *res.DoctorID)
	})

	t.Run("rejects assignee without the doctor role", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingRequest(), nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-id-5", Role: constant.RolePatient}, nil)

		_, err := f.svc.AssignDoctor(ctx, "request-id-123", dto.AssignDoctorRequest{DoctorID: "user-id-5"})

		assert.Error(t, err)
	})

	t.Run("request not found", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactRequest{}, nil)

		_, err := f.svc.AssignDoctor(ctx, "missing-id", dto.AssignDoctorRequest{DoctorID: "doctor-id-1"})

		assert.Error(t, err)
	})
}

func TestContactService_AddReply(t *testing.T) {
	t.Run("copies the sender role onto the reply", func(t *testing.T) {
		f := newFixture(t)
		sender := userModel.User{
			ID:       "doctor-id-1",
			FullName: "Doc Tor",
			Role:     constant.RoleDoctor,
		}

		f.contactRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sender, nil)

		f.contactRepo.EXPECT().
			InsertReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reply model.Reply) error {
				assert.Equal(t, constant.RoleDoctor, reply.SenderRole)
				assert.Equal(t, "request-id-123", reply.RequestID)

				return nil
			})

		res, err := f.svc.AddReply(context.Background(), "request-id-123", dto.AddReplyRequest{Message: "Please book a consultation."}, sender.ID)

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleDoctor, res.SenderRole)
		assert.Equal(t, sender.FullName, *res.SenderName)
	})

	t.Run("request not found", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.AddReply(context.Background(), "missing-id", dto.AddReplyRequest{Message: "hello"}, "user-id-1")

		assert.Error(t, err)
	})

	t.Run("sender not found", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := f.svc.AddReply(context.Background(), "request-id-123", dto.AddReplyRequest{Message: "hello"}, "ghost-id")

		assert.Error(t, err)
	})
}

func TestContactService_UpdateStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-1")

	t.Run("any of the five statuses is accepted", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.contactRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusResolved, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.UpdateStatus(ctx, "request-id-123", dto.UpdateStatusRequest{Status: model.StatusResolved})

		assert.NoError(t, err)
	})

	t.Run("reopening a resolved request is allowed", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.contactRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusPending, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.UpdateStatus(ctx, "request-id-123", dto.UpdateStatusRequest{Status: model.StatusPending})

		assert.NoError(t, err)
	})

	t.Run("request not found", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.UpdateStatus(ctx, "missing-id", dto.UpdateStatusRequest{Status: model.StatusResolved})

		assert.Error(t, err)
	})
}

func TestContactService_GetMine(t *testing.T) {
	f := newFixture(t)

	request := pendingRequest()

	f.contactRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	f.contactRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ContactRequest, error) {
			assert.Equal(t, gDto.FilterGroupOperatorOr, filter.Operator)
			assert.Len(t, filter.Filters, 2)

			return []model.ContactRequest{request}, nil
		})

	res, err := f.svc.GetMine(context.Background(), gDto.QueryParams{Limit: 10}, "patient-id-9", "jane@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Requests, 1)
}

func TestContactService_GetAll(t *testing.T) {
	t.Run("defaults to newest first when no sort is given", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.contactRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ContactRequest, error) {
				assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.ContactRequest{pendingRequest()}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Requests, 1)
	})

	t.Run("keeps the caller's sort when one is given", func(t *testing.T) {
		f := newFixture(t)

		f.contactRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.contactRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ContactRequest, error) {
				assert.Equal(t, model.FieldStatus, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return nil, nil
			})

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, SortBy: model.FieldStatus, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}

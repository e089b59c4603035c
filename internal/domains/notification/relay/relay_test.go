package relay_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dronline/config"
	mailerMocks "dronline/infras/mailer/mocks"
	"dronline/infras/otel/mocks"
	notifMocks "dronline/internal/domains/notification/mocks"
	"dronline/internal/domains/notification/model"
	"dronline/internal/domains/notification/relay"
	gDto "dronline/shared/dto"
)

func pendingNotification(id string, attempts int) model.Notification {
	return model.Notification{
		ID:        id,
		Recipient: "patient@example.com",
		Subject:   "We received your request",
		Body:      "A moderator will be in touch.",
		Status:    model.StatusPending,
		Attempts:  attempts,
	}
}

func TestRelay_DispatchBatch(t *testing.T) {
	cfg := &config.Config{}
	cfg.Outbox.MaxAttempts = 3

	t.Run("delivers pending notifications and marks them sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notifMocks.NewMockNotification(ctrl)
		mailer := mailerMocks.NewMockMailer(ctrl)

		r := relay.New(repo, mailer, cfg, mocks.NewOtel())

		pending := []model.Notification{
			pendingNotification("notif-1", 0),
			pendingNotification("notif-2", 0),
		}

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pending, nil)

		mailer.EXPECT().
			Send(gomock.Any(), "patient@example.com", gomock.Any(), gomock.Any()).
			Return(true).
			Times(2)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusSent, fields[model.FieldStatus])
				assert.Equal(t, 1, fields[model.FieldAttempts])

				return nil
			}).
			Times(2)

		sent, err := r.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("failed delivery bumps attempts and stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notifMocks.NewMockNotification(ctrl)
		mailer := mailerMocks.NewMockMailer(ctrl)

		r := relay.New(repo, mailer, cfg, mocks.NewOtel())

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Notification{pendingNotification("notif-1", 0)}, nil)

		mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 1, fields[model.FieldAttempts])
				assert.NotNil(t, fields[model.FieldLastError])
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})

		sent, err := r.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("exhausted attempts mark the notification failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notifMocks.NewMockNotification(ctrl)
		mailer := mailerMocks.NewMockMailer(ctrl)

		r := relay.New(repo, mailer, cfg, mocks.NewOtel())

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Notification{pendingNotification("notif-1", 2)}, nil)

		mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])
				assert.Equal(t, 3, fields[model.FieldAttempts])

				return nil
			})

		sent, err := r.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("state update failure does not count the send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notifMocks.NewMockNotification(ctrl)
		mailer := mailerMocks.NewMockMailer(ctrl)

		r := relay.New(repo, mailer, cfg, mocks.NewOtel())

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Notification{pendingNotification("notif-1", 0)}, nil)

		mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		sent, err := r.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("query failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notifMocks.NewMockNotification(ctrl)
		mailer := mailerMocks.NewMockMailer(ctrl)

		r := relay.New(repo, mailer, cfg, mocks.NewOtel())

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := r.DispatchBatch(context.Background())

		assert.Error(t, err)
	})
}

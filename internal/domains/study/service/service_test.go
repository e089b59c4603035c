package service_test

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dronline/config"
	"dronline/infras/otel/mocks"
	s3Mocks "dronline/infras/s3/mocks"
	studyMocks "dronline/internal/domains/study/mocks"
	"dronline/internal/domains/study/model"
	"dronline/internal/domains/study/model/dto"
	"dronline/internal/domains/study/service"
	cacheMocks "dronline/shared/cache/mocks"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
)

func newService(t *testing.T) (*studyMocks.MockStudy, *s3Mocks.MockS3, service.Study) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := studyMocks.NewMockStudy(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	svc := service.New(repo, &config.Config{}, cacheMocks.NewRedisCache(), mocks.NewOtel(), mockS3)

	return repo, mockS3, svc
}

func publishedStudy() model.Study {
	return model.Study{
		ID:          "study-id-1",
		Title:       "Cognitive behavioral therapy for chronic migraine",
		Description: "A randomized controlled trial summary.",
		Condition:   "migraine",
		AuthorID:    "doctor-id-1",
		Content:     "Full write-up of the trial findings.",
		Likes:       pq.StringArray{},
	}
}

func roleCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestStudyService_Create(t *testing.T) {
	req := dto.CreateStudyRequest{
		Title:       "New study",
		Description: "Summary of the findings.",
		Condition:   "migraine",
		Content:     "Full text.",
	}

	t.Run("doctor can publish", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, study model.Study) error {
				assert.Equal(t, "doctor-id-1", study.AuthorID)
				assert.Equal(t, "migraine", study.Condition)

				return nil
			})

		_, err := svc.Create(roleCtx("doctor-id-1", constant.RoleDoctor), req, "doctor-id-1")

		assert.NoError(t, err)
	})

	t.Run("admin can publish", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Create(roleCtx("admin-id-1", constant.RoleAdmin), req, "admin-id-1")

		assert.NoError(t, err)
	})

	t.Run("patient cannot publish", func(t *testing.T) {
		_, _, svc := newService(t)

		_, err := svc.Create(roleCtx("patient-id-1", constant.RolePatient), req, "patient-id-1")

		assert.Error(t, err)
	})
}

func TestStudyService_Update(t *testing.T) {
	t.Run("author can update", func(t *testing.T) {
		repo, _, svc := newService(t)
		study := publishedStudy()

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(study, nil)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(study, nil)

		_, err := svc.Update(roleCtx("doctor-id-1", constant.RoleDoctor), study.ID, dto.UpdateStudyRequest{
			Title: "Revised title",
		})

		assert.NoError(t, err)
	})

	t.Run("other doctor is rejected", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(publishedStudy(), nil)

		_, err := svc.Update(roleCtx("doctor-id-2", constant.RoleDoctor), "study-id-1", dto.UpdateStudyRequest{
			Title: "Hijacked",
		})

		assert.Error(t, err)
	})
}

func TestStudyService_Delete(t *testing.T) {
	repo, mockS3, svc := newService(t)
	study := publishedStudy()

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(study, nil)

	repo.EXPECT().
		GetAttachments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Attachment{
			{ID: "attachment-1", StudyID: study.ID, URL: "https://bucket.example.com/study/file.pdf"},
		}, nil)

	repo.EXPECT().
		DeleteAttachments(gomock.Any(), gomock.Any()).
		Return(nil)

	repo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	mockS3.EXPECT().
		GetObjectNameFromURL(gomock.Any(), "https://bucket.example.com/study/file.pdf").
		Return("file.pdf")

	mockS3.EXPECT().
		DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, "file.pdf").
		Return(nil)

	err := svc.Delete(roleCtx("doctor-id-1", constant.RoleDoctor), study.ID)

	assert.NoError(t, err)
}

func TestStudyService_ToggleLike(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(publishedStudy(), nil)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, pq.StringArray{"user-id-1"}, fields[model.FieldLikes])

			return nil
		})

	res, err := svc.ToggleLike(context.Background(), "study-id-1", "user-id-1")

	assert.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, 1, res.Likes)
}

func TestStudyService_Share(t *testing.T) {
	t.Run("increments the counter", func(t *testing.T) {
		repo, _, svc := newService(t)
		study := publishedStudy()
		study.Shares = 4

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(study, nil)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 5, fields[model.FieldShares])

				return nil
			})

		shares, err := svc.Share(context.Background(), "study-id-1")

		assert.NoError(t, err)
		assert.Equal(t, 5, shares)
	})

	t.Run("study not found", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Study{}, nil)

		_, err := svc.Share(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dronline/infras/otel"
	"dronline/infras/postgres"
	"dronline/internal/domains/study/model"
	gDto "dronline/shared/dto"
	gRepo "dronline/shared/repository"
)

type Study interface {
	Insert(ctx context.Context, model model.Study) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Study, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Study, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertAttachment(ctx context.Context, attachment model.Attachment) error
	GetAttachments(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Attachment, error)
	DeleteAttachments(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Study]
	attachmentRepo gRepo.Repository[model.Attachment]
	db             *postgres.Connection
	otel           otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Study {
	return &repositoryImpl{
		Repository:     gRepo.NewRepository[model.Study](model.EntityName, model.TableName, model.FieldID, db, otel),
		attachmentRepo: gRepo.NewRepository[model.Attachment](model.AttachmentEntityName, model.AttachmentTableName, model.AttachmentFieldID, db, otel),
		db:             db,
		otel:           otel,
	}
}

func (r *repositoryImpl) InsertAttachment(ctx context.Context, attachment model.Attachment) error {
	return r.attachmentRepo.Insert(ctx, attachment)
}

func (r *repositoryImpl) GetAttachments(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Attachment, error) {
	return r.attachmentRepo.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) DeleteAttachments(ctx context.Context, filter gDto.FilterGroup) error {
	return r.attachmentRepo.Delete(ctx, filter)
}

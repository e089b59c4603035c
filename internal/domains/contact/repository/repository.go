package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dronline/infras/otel"
	"dronline/infras/postgres"
	"dronline/internal/domains/contact/model"
	gDto "dronline/shared/dto"
	gRepo "dronline/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Contact interface {
	Insert(ctx context.Context, model model.ContactRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ContactRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContactRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertReply(ctx context.Context, reply model.Reply) error
	GetReplies(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reply, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactRequest]
	replyRepo gRepo.Repository[model.Reply]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		replyRepo:  gRepo.NewRepository[model.Reply](model.ReplyEntityName, model.ReplyTableName, model.ReplyFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertReply(ctx context.Context, reply model.Reply) error {
	return r.replyRepo.Insert(ctx, reply)
}

func (r *repositoryImpl) GetReplies(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reply, error) {
	return r.replyRepo.GetAll(ctx, params, filter)
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dronline/infras/otel"
	"dronline/infras/postgres"
	"dronline/internal/domains/notification/model"
	gDto "dronline/shared/dto"
	gRepo "dronline/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Notification interface {
	Insert(ctx context.Context, model model.Notification) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Notification) error
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Notification) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Notification, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

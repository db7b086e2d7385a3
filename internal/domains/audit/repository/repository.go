package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/audit/model"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.Log) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Log) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Log, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Log]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Log](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

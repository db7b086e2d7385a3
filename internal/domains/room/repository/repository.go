package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx loads the room by id with a row lock held until the transaction
// ends. Availability checks run behind this lock so two concurrent bookings
// for the same room serialize instead of both observing a free calendar.
func (repo *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE", strings.Join(repo.InsertColumns, ", "), model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	err := sqltx.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return room, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return room, fmt.Errorf("failed to lock data (%s): %w", model.EntityName, err)
	}

	return room, nil
}

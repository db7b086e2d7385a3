package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// CountOverlapping counts confirmed or checked-in bookings on the room
	// whose date range intersects [checkIn, checkOut). Check-out day does not
	// collide with a check-in on the same day.
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error)
	// CountOverlappingTx is CountOverlapping inside the caller's transaction,
	// used together with a room row lock to close the check-then-act window.
	CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	// MaxActiveGuests returns the largest party size among confirmed or
	// checked-in bookings on the room, zero when there are none.
	MaxActiveGuests(ctx context.Context, roomID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) MaxActiveGuests(ctx context.Context, roomID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.MaxActiveGuests")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, ActiveByRoomFilter(roomID))

	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s %s", model.FieldNumberOfGuests, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var maxGuests int

	if err = prepare.GetContext(ctx, &maxGuests, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get max active guests (%s): %w", model.EntityName, err)
	}

	return maxGuests, nil
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error) {
	return repo.Count(ctx, OverlapFilter(roomID, checkIn, checkOut, excludeID))
}

func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) (int, error) {
	return repo.CountTx(ctx, sqltx, OverlapFilter(roomID, checkIn, checkOut, excludeID))
}

// ActiveByRoomFilter matches bookings that currently hold the room.
func ActiveByRoomFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "active_statuses",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses,
				Table:    model.TableName,
			},
		},
	}
}

// OverlapFilter matches bookings holding the room over any part of the
// half-open range [checkIn, checkOut).
func OverlapFilter(roomID string, checkIn, checkOut time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "active_statuses",
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    model.ActiveStatuses,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_until",
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorLess,
			Value:    checkOut,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_from",
			Field:    model.FieldCheckOutDate,
			Operator: gDto.FilterOperatorGreater,
			Value:    checkIn,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/report/model/dto"
	roomModel "innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	"innkeep/shared/logger"
)

type Report interface {
	// OccupiedRooms counts distinct rooms held by a confirmed or checked-in
	// booking covering the given date.
	OccupiedRooms(ctx context.Context, date time.Time) (int, error)
	TotalRooms(ctx context.Context) (int, error)
	StatusBreakdown(ctx context.Context) ([]dto.StatusCount, error)
	// Revenue sums the paid bookings whose stay intersects [from, to).
	Revenue(ctx context.Context, from, to time.Time) (float64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) OccupiedRooms(ctx context.Context, date time.Time) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.OccupiedRooms")
	defer scope.End()

	args := map[string]any{"date": date}
	named := make([]string, len(bookingModel.ActiveStatuses))

	for i, status := range bookingModel.ActiveStatuses {
		arg := fmt.Sprintf("status_%d", i)
		args[arg] = status
		named[i] = ":" + arg
	}

	query := fmt.Sprintf(
		"SELECT COUNT(DISTINCT %s) FROM %s WHERE %s IN (%s) AND %s <= :date AND %s > :date",
		bookingModel.FieldRoomID, bookingModel.TableName,
		bookingModel.FieldStatus, strings.Join(named, ", "),
		bookingModel.FieldCheckInDate, bookingModel.FieldCheckOutDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.getNamedIn(ctx, &res, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) TotalRooms(ctx context.Context) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.TotalRooms")
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s", roomModel.FieldID, roomModel.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) StatusBreakdown(ctx context.Context) (res []dto.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.StatusBreakdown")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s, COUNT(%s) AS count FROM %s GROUP BY %s ORDER BY %s",
		bookingModel.FieldStatus, bookingModel.FieldID, bookingModel.TableName,
		bookingModel.FieldStatus, bookingModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get status breakdown: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) Revenue(ctx context.Context, from, to time.Time) (res float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Revenue")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s = :paid AND %s < :to AND %s > :from",
		bookingModel.FieldTotalPrice, bookingModel.TableName,
		bookingModel.FieldPaymentStatus, bookingModel.FieldCheckInDate, bookingModel.FieldCheckOutDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"paid": bookingModel.PaymentPaid,
		"from": from,
		"to":   to,
	}

	if err = repo.getNamedIn(ctx, &res, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) getNamedIn(ctx context.Context, dest any, query string, args map[string]any) error {
	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer prepare.Close()

	return prepare.GetContext(ctx, dest, args) // nolint:wrapcheck
}

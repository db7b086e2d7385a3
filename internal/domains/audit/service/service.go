package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/audit/model/dto"
	"innkeep/internal/domains/audit/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
)

type Audit interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLogsResponse, error)
}

type serviceImpl struct {
	repo repository.Audit
	otel otel.Otel
}

func New(repo repository.Audit, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetAll reads straight from the database. Audit logs are append heavy, so
// the listing is not cached.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

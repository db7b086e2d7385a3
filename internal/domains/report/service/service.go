package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/otel"
	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/report/model/dto"
	"innkeep/internal/domains/report/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

const (
	cacheOccupancy = "report:occupancy"
	cacheStatuses  = "report:statuses"
	cacheRevenue   = "report:revenue"
)

type Report interface {
	Occupancy(ctx context.Context, req dto.OccupancyRequest) (dto.OccupancyResponse, error)
	StatusBreakdown(ctx context.Context) (dto.StatusBreakdownResponse, error)
	Revenue(ctx context.Context, req dto.RevenueRequest) (dto.RevenueResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Occupancy(ctx context.Context, req dto.OccupancyRequest) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := timezone.Parse(bookingModel.DateFormat, req.Date)
	if err != nil {
		return res, failure.Validation("invalid report date") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheOccupancy, req.Date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupancy report")

		return res, nil
	}

	occupied, err := s.repo.OccupiedRooms(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupied rooms")

		return res, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	total, err := s.repo.TotalRooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	res.Date = req.Date
	res.OccupiedRooms = occupied
	res.TotalRooms = total

	if total > 0 {
		res.OccupancyRate = float64(occupied) / float64(total)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) StatusBreakdown(ctx context.Context) (res dto.StatusBreakdownResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StatusBreakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStatuses)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for status breakdown")

		return res, nil
	}

	statuses, err := s.repo.StatusBreakdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get status breakdown")

		return res, fmt.Errorf("failed to get status breakdown: %w", err)
	}

	res.Statuses = statuses

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, req dto.RevenueRequest) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, err := timezone.Parse(bookingModel.DateFormat, req.From)
	if err != nil {
		return res, failure.Validation("invalid report range") // nolint:wrapcheck
	}

	to, err := timezone.Parse(bookingModel.DateFormat, req.To)
	if err != nil {
		return res, failure.Validation("invalid report range") // nolint:wrapcheck
	}

	if !to.After(from) {
		return res, failure.Validation("report range must cover at least one day") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheRevenue, req.From, req.To)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for revenue report")

		return res, nil
	}

	revenue, err := s.repo.Revenue(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum revenue")

		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	res.From = req.From
	res.To = req.To
	res.Revenue = revenue

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save report to cache")
		}
	}()
}

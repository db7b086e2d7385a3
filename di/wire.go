//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/infras/s3"
	"innkeep/permissions"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	auditRepository "innkeep/internal/domains/audit/repository"
	auditService "innkeep/internal/domains/audit/service"
	authService "innkeep/internal/domains/auth/service"
	bookingRepository "innkeep/internal/domains/booking/repository"
	bookingService "innkeep/internal/domains/booking/service"
	guestRepository "innkeep/internal/domains/guest/repository"
	guestService "innkeep/internal/domains/guest/service"
	reportRepository "innkeep/internal/domains/report/repository"
	reportService "innkeep/internal/domains/report/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"
	userRepository "innkeep/internal/domains/user/repository"
	userService "innkeep/internal/domains/user/service"

	auditHandler "innkeep/internal/handlers/audit"
	authHandler "innkeep/internal/handlers/auth"
	bookingHandler "innkeep/internal/handlers/booking"
	guestHandler "innkeep/internal/handlers/guest"
	healthHandler "innkeep/internal/handlers/health"
	reportHandler "innkeep/internal/handlers/report"
	roomHandler "innkeep/internal/handlers/room"
	userHandler "innkeep/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	auditDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	auditHandler.New,
	authHandler.New,
	bookingHandler.New,
	guestHandler.New,
	healthHandler.New,
	reportHandler.New,
	roomHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

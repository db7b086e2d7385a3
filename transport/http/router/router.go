package router

import (
	"github.com/go-chi/chi/v5"

	"innkeep/internal/handlers/audit"
	"innkeep/internal/handlers/auth"
	"innkeep/internal/handlers/booking"
	"innkeep/internal/handlers/guest"
	"innkeep/internal/handlers/health"
	"innkeep/internal/handlers/report"
	"innkeep/internal/handlers/room"
	"innkeep/internal/handlers/user"
	"innkeep/transport/http/middleware"
)

type DomainHandlers struct {
	Audit   audit.Handler
	Auth    auth.Handler
	Booking booking.Handler
	Guest   guest.Handler
	Health  health.Handler
	Report  report.Handler
	Room    room.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}

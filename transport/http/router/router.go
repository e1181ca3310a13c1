package router

import (
	_ "hotel/docs" // swagger spec
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/billing"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/contact"
	"hotel/internal/handlers/customer"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/handlers/health"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/roomboard"
	"hotel/internal/handlers/staff"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthPath is the health check path that starts failing once shutdown begins.
const HealthPath = "/v1/health"

type DomainHandlers struct {
	Auth      auth.Handler
	Room      room.Handler
	Booking   booking.Handler
	Billing   billing.Handler
	Customer  customer.Handler
	Staff     staff.Handler
	Dashboard dashboard.Handler
	RoomBoard roomboard.Handler
	Contact   contact.Handler
	Health    health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(r.App.CORS())
	router.Use(r.App.Tracing)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)

		routerGroup.Group(func(public chi.Router) {
			public.Use(r.App.RateLimit())

			r.DomainHandlers.Auth.Router(public)
			r.DomainHandlers.Room.Router(public)
			r.DomainHandlers.Booking.Router(public)
			r.DomainHandlers.Contact.Router(public)
		})

		routerGroup.Route("/admin", func(admin chi.Router) {
			admin.Use(r.AuthRole.APIKey)
			admin.Use(r.AuthRole.Auth)
			admin.Use(r.AuthRole.RBAC)

			r.DomainHandlers.Dashboard.AdminRouter(admin)
			r.DomainHandlers.RoomBoard.AdminRouter(admin)
			r.DomainHandlers.Room.AdminRouter(admin)
			r.DomainHandlers.Booking.AdminRouter(admin)
			r.DomainHandlers.Billing.AdminRouter(admin)
			r.DomainHandlers.Customer.AdminRouter(admin)
			r.DomainHandlers.Staff.AdminRouter(admin)
			r.DomainHandlers.Contact.AdminRouter(admin)
			r.DomainHandlers.Auth.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}

//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	gRepo "hotel/shared/repository"
	"hotel/transport/event"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"hotel/transport/websocket"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	billingService "hotel/internal/domains/billing/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	contactRepository "hotel/internal/domains/contact/repository"
	contactService "hotel/internal/domains/contact/service"
	customerRepository "hotel/internal/domains/customer/repository"
	customerService "hotel/internal/domains/customer/service"
	dashboardRepository "hotel/internal/domains/dashboard/repository"
	dashboardService "hotel/internal/domains/dashboard/service"
	roomEvent "hotel/internal/domains/room/event"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomBoardService "hotel/internal/domains/roomboard/service"
	staffRepository "hotel/internal/domains/staff/repository"
	staffService "hotel/internal/domains/staff/service"
	userRepository "hotel/internal/domains/user/repository"

	authHandler "hotel/internal/handlers/auth"
	billingHandler "hotel/internal/handlers/billing"
	bookingHandler "hotel/internal/handlers/booking"
	contactHandler "hotel/internal/handlers/contact"
	customerHandler "hotel/internal/handlers/customer"
	dashboardHandler "hotel/internal/handlers/dashboard"
	healthHandler "hotel/internal/handlers/health"
	roomHandler "hotel/internal/handlers/room"
	roomBoardHandler "hotel/internal/handlers/roomboard"
	staffHandler "hotel/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
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
	gRepo.NewTransactor,
)

var realtime = wire.NewSet(
	websocket.New,
	wire.Bind(new(roomEvent.Notifier), new(*websocket.Hub)),
	roomEvent.NewPublisher,
	event.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	roomBoardService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	billingService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	customerDomain,
	staffDomain,
	contactDomain,
	dashboardDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	billingHandler.New,
	customerHandler.New,
	staffHandler.New,
	dashboardHandler.New,
	roomBoardHandler.New,
	contactHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		realtime,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

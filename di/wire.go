//go:build wireinject
// +build wireinject

package di

import (
	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/infras/redis"
	"shareit/shared/cache"
	"shareit/shared/clock"
	"shareit/shared/keylock"
	"shareit/transport/http"
	"shareit/transport/http/middleware"
	"shareit/transport/http/router"

	"github.com/google/wire"

	bookingService "shareit/internal/domains/booking/service"
	itemRepository "shareit/internal/domains/item/repository"
	itemService "shareit/internal/domains/item/service"
	requestRepository "shareit/internal/domains/request/repository"
	requestService "shareit/internal/domains/request/service"
	userRepository "shareit/internal/domains/user/repository"
	userService "shareit/internal/domains/user/service"

	bookingHandler "shareit/internal/handlers/booking"
	itemHandler "shareit/internal/handlers/item"
	requestHandler "shareit/internal/handlers/request"
	userHandler "shareit/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.NewSystem,
	keylock.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var itemDomain = wire.NewSet(
	itemRepository.New,
	itemRepository.NewComment,
	itemService.New,
)

var bookingDomain = wire.NewSet(
	ProvideBookingRepository,
	bookingService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var domains = wire.NewSet(
	userDomain,
	itemDomain,
	bookingDomain,
	requestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	itemHandler.New,
	bookingHandler.New,
	requestHandler.New,
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

//go:build wireinject
// +build wireinject

package di

import (
	"courtside/config"
	"courtside/infras/jwt"
	"courtside/infras/kafka"
	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/infras/redis"
	"courtside/infras/s3"
	"courtside/internal/events"
	"courtside/permissions"
	"courtside/shared/cache"
	"courtside/transport/http"
	"courtside/transport/http/middleware"
	"courtside/transport/http/router"

	bookingHandler "courtside/internal/handlers/booking"
	establishmentHandler "courtside/internal/handlers/establishment"
	recurringHandler "courtside/internal/handlers/recurring"
	resourceHandler "courtside/internal/handlers/resource"

	bookingRepository "courtside/internal/domains/booking/repository"
	bookingService "courtside/internal/domains/booking/service"
	consumptionRepository "courtside/internal/domains/consumption/repository"
	establishmentRepository "courtside/internal/domains/establishment/repository"
	establishmentService "courtside/internal/domains/establishment/service"
	ledgerRepository "courtside/internal/domains/ledger/repository"
	recurringRepository "courtside/internal/domains/recurring/repository"
	recurringService "courtside/internal/domains/recurring/service"
	resourceRepository "courtside/internal/domains/resource/repository"
	resourceService "courtside/internal/domains/resource/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
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
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var establishmentDomain = wire.NewSet(
	establishmentRepository.New,
	establishmentService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var bookingDomain = wire.NewSet(
	ledgerRepository.New,
	consumptionRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var recurringDomain = wire.NewSet(
	recurringRepository.New,
	recurringService.New,
)

var domains = wire.NewSet(
	establishmentDomain,
	resourceDomain,
	bookingDomain,
	recurringDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	establishmentHandler.New,
	resourceHandler.New,
	bookingHandler.New,
	recurringHandler.New,
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

//go:build wireinject
// +build wireinject

package di

import (
	"cleanrate/config"
	"cleanrate/infras/jwt"
	"cleanrate/infras/kafka"
	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/infras/redis"
	"cleanrate/shared/cache"
	"cleanrate/shared/storage"
	"cleanrate/transport/http"
	"cleanrate/transport/http/middleware"
	"cleanrate/transport/http/router"
	kafkaTransport "cleanrate/transport/kafka"

	"github.com/google/wire"

	authService "cleanrate/internal/domains/auth/service"
	dashboardRepository "cleanrate/internal/domains/dashboard/repository"
	dashboardService "cleanrate/internal/domains/dashboard/service"
	employeeRepository "cleanrate/internal/domains/employee/repository"
	employeeService "cleanrate/internal/domains/employee/service"
	facilityRepository "cleanrate/internal/domains/facility/repository"
	facilityService "cleanrate/internal/domains/facility/service"
	historyRepository "cleanrate/internal/domains/history/repository"
	historyService "cleanrate/internal/domains/history/service"
	ratingRepository "cleanrate/internal/domains/rating/repository"
	ratingService "cleanrate/internal/domains/rating/service"
	uploadService "cleanrate/internal/domains/upload/service"

	authHandler "cleanrate/internal/handlers/auth"
	dashboardHandler "cleanrate/internal/handlers/dashboard"
	employeeHandler "cleanrate/internal/handlers/employee"
	facilityHandler "cleanrate/internal/handlers/facility"
	historyHandler "cleanrate/internal/handlers/history"
	ratingHandler "cleanrate/internal/handlers/rating"
	uploadHandler "cleanrate/internal/handlers/upload"
)

var configurations = wire.NewSet(
	config.Get,
	ProvidePermissions,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	storage.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.NewBuilding,
	facilityRepository.NewFloor,
	facilityRepository.NewRoom,
	facilityRepository.NewAssignment,
	facilityService.New,
	facilityService.NewAssignment,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var ratingDomain = wire.NewSet(
	ratingRepository.New,
	ratingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var uploadDomain = wire.NewSet(
	uploadService.New,
)

var domains = wire.NewSet(
	historyDomain,
	facilityDomain,
	employeeDomain,
	authDomain,
	ratingDomain,
	dashboardDomain,
	uploadDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	employeeHandler.New,
	facilityHandler.New,
	ratingHandler.New,
	historyHandler.New,
	uploadHandler.New,
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
		ProvideClosers,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeAuditConsumer() *kafkaTransport.AuditConsumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		historyDomain,
		kafkaTransport.NewAuditConsumer,
	)

	return &kafkaTransport.AuditConsumer{}
}

func InitializeAuth() authService.Auth {
	wire.Build(
		config.Get,
		infrastructures,
		cache.NewRedisCache,
		historyDomain,
		facilityRepository.NewAssignment,
		facilityService.NewAssignment,
		employeeRepository.New,
		authDomain,
	)

	return nil
}

//go:build wireinject
// +build wireinject

package di

import (
	"dronline/config"
	"dronline/infras/jwt"
	"dronline/infras/kafka"
	"dronline/infras/mailer"
	"dronline/infras/otel"
	"dronline/infras/postgres"
	"dronline/infras/redis"
	"dronline/infras/s3"
	"dronline/permissions"
	"dronline/shared/cache"
	"dronline/transport/http"
	"dronline/transport/http/middleware"
	"dronline/transport/http/router"

	"github.com/google/wire"

	authService "dronline/internal/domains/auth/service"
	bookingRepository "dronline/internal/domains/booking/repository"
	bookingService "dronline/internal/domains/booking/service"
	contactRepository "dronline/internal/domains/contact/repository"
	contactService "dronline/internal/domains/contact/service"
	discussionRepository "dronline/internal/domains/discussion/repository"
	discussionService "dronline/internal/domains/discussion/service"
	notificationRelay "dronline/internal/domains/notification/relay"
	notificationRepository "dronline/internal/domains/notification/repository"
	studyRepository "dronline/internal/domains/study/repository"
	studyService "dronline/internal/domains/study/service"
	userRepository "dronline/internal/domains/user/repository"
	userService "dronline/internal/domains/user/service"

	authHandler "dronline/internal/handlers/auth"
	bookingHandler "dronline/internal/handlers/booking"
	contactHandler "dronline/internal/handlers/contact"
	discussionHandler "dronline/internal/handlers/discussion"
	healthHandler "dronline/internal/handlers/health"
	studyHandler "dronline/internal/handlers/study"
	userHandler "dronline/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var discussionDomain = wire.NewSet(
	discussionRepository.New,
	discussionService.New,
)

var studyDomain = wire.NewSet(
	studyRepository.New,
	studyService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	contactDomain,
	bookingDomain,
	discussionDomain,
	studyDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	contactHandler.New,
	bookingHandler.New,
	discussionHandler.New,
	studyHandler.New,
	healthHandler.New,
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

func InitializeRelay() notificationRelay.Relay {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		mailer.New,
		notificationRepository.New,
		notificationRelay.New,
	)

	return nil
}

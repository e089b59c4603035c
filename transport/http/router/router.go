package router

import (
	"dronline/internal/handlers/auth"
	"dronline/internal/handlers/booking"
	"dronline/internal/handlers/contact"
	"dronline/internal/handlers/discussion"
	"dronline/internal/handlers/health"
	"dronline/internal/handlers/study"
	"dronline/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Contact    contact.Handler
	Booking    booking.Handler
	Discussion discussion.Handler
	Study      study.Handler
	Health     health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Discussion.Router(routerGroup)
		r.DomainHandlers.Study.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

package router

import (
	"github.com/go-chi/chi/v5"

	"courtside/internal/handlers/booking"
	"courtside/internal/handlers/establishment"
	"courtside/internal/handlers/recurring"
	"courtside/internal/handlers/resource"
)

type DomainHandlers struct {
	Establishment establishment.Handler
	Resource      resource.Handler
	Booking       booking.Handler
	Recurring     recurring.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Establishment.Router(routerGroup)
		r.DomainHandlers.Resource.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Recurring.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/item"
	"shareit/internal/handlers/request"
	"shareit/internal/handlers/user"
	"shareit/transport/http/middleware"
)

type DomainHandlers struct {
	User    user.Handler
	Item    item.Handler
	Booking booking.Handler
	Request request.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)

		routerGroup.Group(func(identified chi.Router) {
			identified.Use(r.Middleware.Identity)

			r.DomainHandlers.Item.Router(identified)
			r.DomainHandlers.Booking.Router(identified)
			r.DomainHandlers.Request.Router(identified)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}

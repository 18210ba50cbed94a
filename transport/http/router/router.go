package router

import (
	"cleanrate/internal/handlers/auth"
	"cleanrate/internal/handlers/dashboard"
	"cleanrate/internal/handlers/employee"
	"cleanrate/internal/handlers/facility"
	"cleanrate/internal/handlers/history"
	"cleanrate/internal/handlers/rating"
	"cleanrate/internal/handlers/upload"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Dashboard dashboard.Handler
	Employee  employee.Handler
	Facility  facility.Handler
	Rating    rating.Handler
	History   history.Handler
	Upload    upload.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Rating.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
		r.DomainHandlers.Upload.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// Package httpx wires the job board services to net/http.
package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/pyar/jobboard/internal/domain/auth"
	"github.com/pyar/jobboard/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs      *service.JobService
	Companies *service.CompanyService
	Feed      *service.FeedService
	Sessions  SessionResolver
	Logger    *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs, Logger: services.Logger}
	companyHandlers := &CompanyHandlers{Svc: services.Companies}
	feedHandlers := &FeedHandlers{Svc: services.Feed}

	registerJobRoutes(mux, jobHandlers, services.Sessions)
	registerCompanyRoutes(mux, companyHandlers, services.Sessions)

	mux.Handle("GET /feed/jobs", http.HandlerFunc(feedHandlers.RSS))
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers, sessions SessionResolver) {
	public := OptionalAuth(sessions)
	authed := RequireAuth(sessions)
	moderator := RequireRole(sessions, domainauth.RoleModerator)

	mux.Handle("GET /api/jobs", public(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/jobs/{id}", public(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/jobs", authed(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/jobs/{id}", authed(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/jobs/{id}", authed(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/jobs/{id}/inactivate", moderator(http.HandlerFunc(h.Inactivate)))
	mux.Handle("GET /api/jobs/{id}/inactivations", moderator(http.HandlerFunc(h.Inactivations)))
}

func registerCompanyRoutes(mux *http.ServeMux, h *CompanyHandlers, sessions SessionResolver) {
	authed := RequireAuth(sessions)
	moderator := RequireRole(sessions, domainauth.RoleModerator)

	mux.Handle("GET /api/companies", http.HandlerFunc(h.List))
	mux.Handle("GET /api/companies/{id}", http.HandlerFunc(h.Get))
	mux.Handle("POST /api/companies", authed(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/companies/{id}/rank", moderator(http.HandlerFunc(h.SetRank)))
}

package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/pyar/jobboard/config"
	domainauth "github.com/pyar/jobboard/internal/domain/auth"
	"github.com/pyar/jobboard/internal/mocks"
	"github.com/pyar/jobboard/internal/service"
)

// stubSessions resolves session cookies from a fixed map.
type stubSessions map[string]domainauth.Session

func (s stubSessions) Get(_ context.Context, id string) (domainauth.Session, error) {
	sess, ok := s[id]
	if !ok {
		return domainauth.Session{}, http.ErrNoCookie
	}
	return sess, nil
}

func testSessions() stubSessions {
	expires := time.Now().Add(time.Hour)
	return stubSessions{
		"user-token": {ID: "user-token", UserID: "user-1", Email: "user@example.com", Role: domainauth.RoleUser, ExpiresAt: expires},
		"other-token": {ID: "other-token", UserID: "user-2", Email: "other@example.com", Role: domainauth.RoleUser, ExpiresAt: expires},
		"mod-token": {ID: "mod-token", UserID: "mod-1", Email: "mod@example.com", Role: domainauth.RoleModerator, ExpiresAt: expires},
	}
}

func withSession(r *http.Request, token string) *http.Request {
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	return r
}

type routerDeps struct {
	jobs      *mocks.MockJobRepository
	companies *mocks.MockCompanyRepository
	mailer    *mocks.MockMailer
	router    http.Handler
}

// newTestRouter builds the full router backed by mock repositories.
func newTestRouter(t *testing.T) routerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := routerDeps{
		jobs:      mocks.NewMockJobRepository(ctrl),
		companies: mocks.NewMockCompanyRepository(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
	}

	listing := config.ListingConfig{LookbackDays: 60, PageSize: 20, SponsoredLimit: 3, FeedSize: 10}
	jobSvc := service.NewJobService(service.JobServiceOptions{
		JobRepo:     deps.jobs,
		CompanyRepo: deps.companies,
		Mailer:      deps.mailer,
		Listing:     listing,
		Logger:      slog.Default(),
	})
	companySvc := service.NewCompanyService(service.CompanyServiceOptions{CompanyRepo: deps.companies})
	feedSvc := service.NewFeedService(service.FeedServiceOptions{
		JobRepo: deps.jobs,
		Listing: listing,
		BaseURL: "https://jobs.example.org",
	})

	deps.router = NewRouter(RouterServices{
		Jobs:      jobSvc,
		Companies: companySvc,
		Feed:      feedSvc,
		Sessions:  testSessions(),
		Logger:    slog.Default(),
	})
	return deps
}

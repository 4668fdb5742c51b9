package service

import (
	"context"
	"log/slog"

	"github.com/pyar/jobboard/internal/domain/auth"
	"github.com/pyar/jobboard/internal/domain/model"
	apperrors "github.com/pyar/jobboard/internal/errors"
)

// CompanyServiceOptions groups dependencies for CompanyService.
type CompanyServiceOptions struct {
	CompanyRepo CompanyRepository
	Logger      *slog.Logger
}

// CompanyService manages company registration and the sponsorship rank.
type CompanyService struct {
	companies CompanyRepository
	logger    *slog.Logger
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(opts CompanyServiceOptions) *CompanyService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyService{companies: opts.CompanyRepo, logger: logger}
}

// Create registers a company owned by the session user.
func (s *CompanyService) Create(ctx context.Context, sess *auth.Session, req *model.CreateCompanyRequest) (*model.Company, error) {
	if sess == nil || sess.IsGuest() {
		return nil, apperrors.Forbidden("sign in to register a company")
	}
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}

	req.OwnerID = sess.UserID
	if req.OwnerEmail == "" {
		req.OwnerEmail = sess.Email
	}
	// rank is assigned by moderators, never at registration
	req.Rank = 0
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	company, err := s.companies.Create(ctx, req)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.logger.InfoContext(ctx, "company created", "company_id", company.ID, "owner_id", company.OwnerID)
	return company, nil
}

// GetByID returns a single company.
func (s *CompanyService) GetByID(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return company, nil
}

// List returns all registered companies.
func (s *CompanyService) List(ctx context.Context) ([]*model.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return companies, nil
}

// SetRank updates the sponsorship rank of a company. Moderator only.
func (s *CompanyService) SetRank(ctx context.Context, sess *auth.Session, id string, rank int) (*model.Company, error) {
	if !auth.CanModerate(sess) {
		return nil, apperrors.Forbidden("only moderators may change the sponsorship rank")
	}
	if rank < 0 {
		return nil, apperrors.ValidationField("rank", "rank must be >= 0")
	}

	company, err := s.companies.SetRank(ctx, id, rank)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.logger.InfoContext(ctx, "company rank updated",
		"company_id", id, "rank", rank, "moderator_id", sess.UserID)
	return company, nil
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pyar/jobboard/config"
	"github.com/pyar/jobboard/internal/domain/auth"
	"github.com/pyar/jobboard/internal/domain/model"
	apperrors "github.com/pyar/jobboard/internal/errors"
	obserrors "github.com/pyar/jobboard/internal/observability/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	JobRepo     JobRepository
	CompanyRepo CompanyRepository
	Mailer      Mailer
	Metrics     Metrics
	Listing     config.ListingConfig
	Logger      *slog.Logger
	Now         func() time.Time
}

// JobService orchestrates job posting CRUD, the public listing and moderation.
type JobService struct {
	jobs      JobRepository
	companies CompanyRepository
	mailer    Mailer
	metrics   Metrics
	listing   config.ListingConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	listing := opts.Listing
	listing.Sanitize()
	return &JobService{
		jobs:      opts.JobRepo,
		companies: opts.CompanyRepo,
		mailer:    opts.Mailer,
		metrics:   opts.Metrics,
		listing:   listing,
		logger:    logger,
		now:       now,
	}
}

// JobsPage is one page of the public listing: the sponsored highlight set
// plus the paginated non-sponsored list.
type JobsPage struct {
	Sponsored []*model.Job `json:"sponsored"`
	Jobs      []*model.Job `json:"jobs"`
	Page      int          `json:"page"`
	PageSize  int          `json:"page_size"`
	Total     int          `json:"total"`
	TotalPage int          `json:"total_pages"`
}

// Create publishes a new job posting on behalf of the session user. The
// description is sanitized and the tags normalized before persisting.
func (s *JobService) Create(ctx context.Context, sess *auth.Session, req *model.CreateJobRequest) (*model.Job, error) {
	if sess == nil || sess.IsGuest() {
		return nil, apperrors.Forbidden("sign in to publish a job")
	}
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}

	req.OwnerID = sess.UserID
	req.Description = SanitizeDescription(req.Description)
	req.Tags = model.NormalizeTags(req.Tags)
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			return nil, apperrors.ValidationField("company_id", "company does not exist")
		}
	}

	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.count("jobs.created", map[string]string{"remote": boolTag(job.RemoteWork)})
	s.logger.InfoContext(ctx, "job created", "job_id", job.ID, "owner_id", job.OwnerID)
	return job, nil
}

// GetByID returns a single job. Inactive jobs stay visible to their owner
// and to moderators but are hidden from everyone else.
func (s *JobService) GetByID(ctx context.Context, sess *auth.Session, id string) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !job.IsActive && !auth.CanModifyJob(sess, job) && !auth.CanModerate(sess) {
		return nil, apperrors.NotFound("job not found")
	}
	return job, nil
}

// Update applies a partial edit. Only the owner may edit a posting.
func (s *JobService) Update(ctx context.Context, sess *auth.Session, id string, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !auth.CanModifyJob(sess, job) {
		return nil, apperrors.Forbidden("only the owner may edit this job")
	}

	if req.Description != nil {
		sanitized := SanitizeDescription(*req.Description)
		req.Description = &sanitized
	}
	if req.Tags != nil {
		normalized := model.NormalizeTags(*req.Tags)
		req.Tags = &normalized
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if req.CompanyID != nil && *req.CompanyID != "" {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			return nil, apperrors.ValidationField("company_id", "company does not exist")
		}
	}

	updated, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.count("jobs.updated", nil)
	s.logger.InfoContext(ctx, "job updated", "job_id", id)
	return updated, nil
}

// Delete removes a posting. Only the owner may delete it.
func (s *JobService) Delete(ctx context.Context, sess *auth.Session, id string) error {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if !auth.CanModifyJob(sess, job) {
		return apperrors.Forbidden("only the owner may delete this job")
	}

	deleted, err := s.jobs.Delete(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if !deleted {
		return apperrors.NotFound("job not found")
	}
	s.count("jobs.deleted", nil)
	s.logger.InfoContext(ctx, "job deleted", "job_id", id)
	return nil
}

// List returns one page of the public listing. Page numbers start at 1;
// out-of-range pages yield an empty job list with intact pagination metadata.
func (s *JobService) List(ctx context.Context, filters model.JobFilters, page int) (*JobsPage, error) {
	if page < 1 {
		page = 1
	}
	now := s.now().UTC()
	since := now.AddDate(0, 0, -s.listing.LookbackDays)

	sponsored, err := s.jobs.ListSponsored(ctx, model.JobsListOptions{
		Since: since,
		Now:   now,
		Limit: s.listing.SponsoredLimit,
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}

	opts := model.JobsListOptions{
		Since:   since,
		Now:     now,
		Filters: filters,
		Limit:   s.listing.PageSize,
		Offset:  (page - 1) * s.listing.PageSize,
	}
	jobs, err := s.jobs.ListNonSponsored(ctx, opts)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	total, err := s.jobs.CountNonSponsored(ctx, opts)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	totalPages := (total + s.listing.PageSize - 1) / s.listing.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	s.count("jobs.listed", nil)
	return &JobsPage{
		Sponsored: sponsored,
		Jobs:      jobs,
		Page:      page,
		PageSize:  s.listing.PageSize,
		Total:     total,
		TotalPage: totalPages,
	}, nil
}

// Inactivate takes a posting down. Moderator only. The notification mail is
// best effort: a delivery failure is logged but never rolls the takedown back.
func (s *JobService) Inactivate(ctx context.Context, sess *auth.Session, id string, req *model.InactivateJobRequest) (*model.Job, error) {
	if !auth.CanModerate(sess) {
		return nil, apperrors.Forbidden("only moderators may inactivate jobs")
	}
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	record, err := s.jobs.Inactivate(ctx, id, req)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	job.IsActive = false
	s.count("jobs.inactivated", map[string]string{"reason": record.Reason})
	s.logger.InfoContext(ctx, "job inactivated",
		"job_id", id, "moderator_id", sess.UserID, "reason", record.Reason)

	if req.SendEmail && s.mailer != nil {
		to := s.notificationRecipient(ctx, job)
		if mailErr := s.mailer.SendJobInactivated(ctx, to, job, req.Reason, req.Comment); mailErr != nil {
			s.count("jobs.inactivation_mail_failed", map[string]string{
				"error_class": obserrors.Classify(mailErr),
			})
			s.logger.ErrorContext(ctx, "inactivation mail failed",
				"job_id", id, "err", mailErr)
		} else {
			s.count("jobs.inactivation_mail_sent", nil)
		}
	}
	return job, nil
}

// ListInactivations returns the moderation audit trail for a job, newest
// first. Moderator only.
func (s *JobService) ListInactivations(ctx context.Context, sess *auth.Session, id string) ([]*model.JobInactivation, error) {
	if !auth.CanModerate(sess) {
		return nil, apperrors.Forbidden("only moderators may view moderation records")
	}
	if _, err := s.jobs.GetByID(ctx, id); err != nil {
		return nil, mapRepoErr(err)
	}
	records, err := s.jobs.ListInactivations(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return records, nil
}

// notificationRecipient resolves where takedown notices go: the owner of the
// job's company when there is one, otherwise the posting's contact address.
func (s *JobService) notificationRecipient(ctx context.Context, job *model.Job) string {
	if job.CompanyID == nil {
		return job.Email
	}
	company, err := s.companies.GetByID(ctx, *job.CompanyID)
	if err != nil || company.OwnerEmail == "" {
		return job.Email
	}
	return company.OwnerEmail
}

func (s *JobService) count(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.Count(name, 1, tags)
	}
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

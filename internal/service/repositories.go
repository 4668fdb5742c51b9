// Package service implements the business logic of the job board.
package service

import (
	"context"

	"github.com/pyar/jobboard/internal/domain/model"
)

// JobRepository is the persistence contract used by JobService.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListSponsored(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error)
	ListNonSponsored(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error)
	CountNonSponsored(ctx context.Context, opts model.JobsListOptions) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*model.JobFeedItem, error)
	Inactivate(ctx context.Context, id string, req *model.InactivateJobRequest) (*model.JobInactivation, error)
	ListInactivations(ctx context.Context, id string) ([]*model.JobInactivation, error)
}

// CompanyRepository is the persistence contract used for company lookups.
type CompanyRepository interface {
	Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	List(ctx context.Context) ([]*model.Company, error)
	SetRank(ctx context.Context, id string, rank int) (*model.Company, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Mailer delivers moderation notifications to job owners.
type Mailer interface {
	SendJobInactivated(ctx context.Context, to string, job *model.Job, reason, comment string) error
}

// Metrics is the subset of the StatsD client the services emit to.
type Metrics interface {
	Count(name string, value int64, tags map[string]string)
}

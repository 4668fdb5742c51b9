package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/pyar/jobboard/internal/data"
	"github.com/pyar/jobboard/internal/domain/model"
)

// CreateTestCompany inserts a company with sensible defaults, applying any overrides.
func CreateTestCompany(t TestingTB, db *sql.DB, overrides ...func(*model.CreateCompanyRequest)) *model.Company {
	t.Helper()

	req := &model.CreateCompanyRequest{
		OwnerID:    "owner-1",
		OwnerEmail: "owner@example.com",
		Name:       "Test Company " + randomSuffix(),
		URL:        "https://example.com",
		Rank:       0,
	}
	for _, o := range overrides {
		o(req)
	}

	company, err := data.NewCompanyRepo(db).Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create test company: %v", err)
	}
	return company
}

// CreateTestJob inserts a job with sensible defaults, applying any overrides.
func CreateTestJob(t TestingTB, db *sql.DB, overrides ...func(*model.CreateJobRequest)) *model.Job {
	t.Helper()

	req := &model.CreateJobRequest{
		Title:       "Backend Developer",
		Description: "<p>We need a backend developer.</p>",
		Location:    "Buenos Aires",
		Email:       "jobs@example.com",
		Seniority:   "Senior",
		RemoteWork:  false,
		Tags:        []string{"python", "django"},
		OwnerID:     "owner-1",
	}
	for _, o := range overrides {
		o(req)
	}

	job, err := data.NewJobRepo(db).Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}

// CreateTestJobAt inserts a job and backdates its created_at, for exercising
// date buckets and the listing lookback.
func CreateTestJobAt(t TestingTB, db *sql.DB, createdAt time.Time, overrides ...func(*model.CreateJobRequest)) *model.Job {
	t.Helper()

	job := CreateTestJob(t, db, overrides...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx,
		`UPDATE jobs SET created_at = $2, updated_at = $2 WHERE id = $1`, job.ID, createdAt); err != nil {
		t.Fatalf("Failed to backdate test job: %v", err)
	}
	job.CreatedAt = createdAt
	job.UpdatedAt = createdAt
	return job
}

func randomSuffix() string {
	return time.Now().Format("150405.000000000")
}

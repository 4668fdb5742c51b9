// Package devseed populates a development database with sample companies,
// jobs and login sessions. Never wired up outside dev mode.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	redisadapter "github.com/pyar/jobboard/internal/adapters/redis"
	"github.com/pyar/jobboard/internal/data"
	"github.com/pyar/jobboard/internal/domain/auth"
	"github.com/pyar/jobboard/internal/domain/model"
)

// Options groups the dependencies needed for development seeding.
type Options struct {
	DB       *sql.DB
	Sessions *redisadapter.SessionStore
	Logger   *slog.Logger
}

// Run seeds sample data when the jobs table is empty and always provisions
// fresh dev sessions. The session tokens are logged so they can be pasted
// into a session_id cookie.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedSessions(ctx, opts.Sessions, logger); err != nil {
		return err
	}

	var jobCount int
	if err := opts.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&jobCount); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if jobCount > 0 {
		logger.InfoContext(ctx, "devseed: jobs already present, skipping sample data")
		return nil
	}

	return seedSampleData(ctx, opts.DB, logger)
}

func seedSessions(ctx context.Context, store *redisadapter.SessionStore, logger *slog.Logger) error {
	if store == nil {
		return nil
	}

	sessions := []auth.Session{
		{
			ID:        uuid.NewString(),
			UserID:    "dev-user",
			FirstName: "Dev",
			LastName:  "User",
			Email:     "dev-user@example.com",
			Role:      auth.RoleUser,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			UserID:    "dev-moderator",
			FirstName: "Dev",
			LastName:  "Moderator",
			Email:     "dev-moderator@example.com",
			Role:      auth.RoleModerator,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		},
	}
	for _, sess := range sessions {
		if err := store.Save(ctx, sess); err != nil {
			return fmt.Errorf("save dev session: %w", err)
		}
		logger.InfoContext(ctx, "devseed: session ready",
			"role", sess.Role, "session_id", sess.ID)
	}
	return nil
}

func seedSampleData(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	companies := data.NewCompanyRepo(db)
	jobs := data.NewJobRepo(db)

	sponsored, err := companies.Create(ctx, &model.CreateCompanyRequest{
		OwnerID:    "dev-user",
		OwnerEmail: "dev-user@example.com",
		Name:       "Monos Inc",
		URL:        "https://monos.example.com",
	})
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	if _, err = companies.SetRank(ctx, sponsored.ID, 1); err != nil {
		return fmt.Errorf("rank seed company: %w", err)
	}

	plain, err := companies.Create(ctx, &model.CreateCompanyRequest{
		OwnerID:    "dev-user",
		OwnerEmail: "dev-user@example.com",
		Name:       "Yacaré Software",
		URL:        "https://yacare.example.com",
	})
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}

	seedJobs := []*model.CreateJobRequest{
		{
			Title:       "Desarrollador Python Senior",
			Description: "<p>Buscamos alguien con experiencia en Django y PostgreSQL.</p>",
			Location:    "Buenos Aires",
			Email:       "rrhh@monos.example.com",
			Seniority:   "Senior",
			RemoteWork:  true,
			Tags:        []string{"python", "django", "postgresql"},
			CompanyID:   &sponsored.ID,
			OwnerID:     "dev-user",
		},
		{
			Title:       "Backend Developer",
			Description: "<p>APIs REST con Python.</p>",
			Location:    "Córdoba",
			Email:       "jobs@yacare.example.com",
			Seniority:   "Semi Senior",
			Tags:        []string{"python", "api"},
			CompanyID:   &plain.ID,
			OwnerID:     "dev-user",
		},
		{
			Title:       "Data Engineer",
			Description: "<p>Pipelines de datos, sin empresa asociada.</p>",
			Location:    "Remoto",
			Email:       "freelance@example.com",
			Seniority:   "Junior",
			RemoteWork:  true,
			Tags:        []string{"python", "etl"},
			OwnerID:     "dev-moderator",
		},
	}
	for _, req := range seedJobs {
		job, err := jobs.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed job %q: %w", req.Title, err)
		}
		logger.InfoContext(ctx, "devseed: job created", "job_id", job.ID, "title", job.Title)
	}

	logger.InfoContext(ctx, "devseed: sample data ready",
		"companies", 2, "jobs", len(seedJobs))
	return nil
}

// Package data contains the PostgreSQL repositories for the job board.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pyar/jobboard/internal/data/database"
	"github.com/pyar/jobboard/internal/data/pgxutil"
	"github.com/pyar/jobboard/internal/domain/model"
)

// ErrJobNotFound is returned when a job is not found.
var ErrJobNotFound = errors.New("job not found")

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// Create inserts a new job posting. The caller is responsible for having
// sanitized the description and normalized the tags.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (
				title, description, location, email, seniority, remote_work, tags, company_id, owner_id, is_active, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10, $10
			) RETURNING `+jobColumnList,
			strings.TrimSpace(req.Title),
			req.Description,
			strings.TrimSpace(req.Location),
			strings.TrimSpace(req.Email),
			strings.TrimSpace(req.Seniority),
			req.RemoteWork,
			tags,
			req.CompanyID,
			req.OwnerID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a job by ID regardless of its active flag.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &job, nil
}

// Update applies a partial update to a job. Only submitted fields change;
// updated_at is always refreshed.
func (r *JobRepo) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := "UPDATE jobs SET " + setClause +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + jobColumnList

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a job based on the request.
func (r *JobRepo) buildUpdateClause(req model.UpdateJobRequest) (string, []any) {
	setParts := make([]string, 0, 9)
	args := make([]any, 0, 10)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Location))
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Email))
	}
	if req.Seniority != nil {
		setParts = append(setParts, fmt.Sprintf("seniority = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Seniority))
	}
	if req.RemoteWork != nil {
		setParts = append(setParts, fmt.Sprintf("remote_work = $%d", nextIdx()))
		args = append(args, *req.RemoteWork)
	}
	if req.Tags != nil {
		setParts = append(setParts, fmt.Sprintf("tags = $%d", nextIdx()))
		args = append(args, *req.Tags)
	}
	if req.CompanyID != nil {
		if strings.TrimSpace(*req.CompanyID) == "" {
			setParts = append(setParts, "company_id = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("company_id = $%d", nextIdx()))
			args = append(args, *req.CompanyID)
		}
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete deletes a job by ID.
func (r *JobRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return rows > 0, nil
}

// ListSponsored returns active jobs created at or after since whose company
// has a positive rank, newest first, capped at limit.
func (r *JobRepo) ListSponsored(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 3
	}

	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobListSponsoredQuery, opts.Since, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list sponsored jobs: %w", err)
	}
	return toJobPtrs(rowsOut), nil
}

// ListNonSponsored returns one page of active, non-sponsored jobs created at
// or after opts.Since, with the composable filters applied, newest first.
func (r *JobRepo) ListNonSponsored(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
	query, args := database.BuildListQuery(r.buildNonSponsoredOptions(opts, false))

	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return toJobPtrs(rowsOut), nil
}

// CountNonSponsored returns the total matching the same predicate set as
// ListNonSponsored, for pagination metadata.
func (r *JobRepo) CountNonSponsored(ctx context.Context, opts model.JobsListOptions) (int, error) {
	query, args := database.BuildListQuery(r.buildNonSponsoredOptions(opts, true))

	var total int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&total)
	}); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return total, nil
}

// ListRecent returns the most recently created jobs, newest first, for the
// syndication feed. The active flag is intentionally not checked here.
func (r *JobRepo) ListRecent(ctx context.Context, limit int) ([]*model.JobFeedItem, error) {
	if limit <= 0 {
		limit = 10
	}

	var rowsOut []model.JobFeedItem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobListRecentQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobFeedItem])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}

	res := make([]*model.JobFeedItem, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Inactivate flips a job to inactive and records the moderation action in a
// single transaction. The transition is one-way; re-inactivating an already
// inactive job still records the action.
func (r *JobRepo) Inactivate(ctx context.Context, jobID string, req *model.InactivateJobRequest) (*model.JobInactivation, error) {
	if req == nil {
		return nil, errors.New("inactivate job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobInactivation
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx,
			`UPDATE jobs SET is_active = FALSE, updated_at = $2 WHERE id = $1`, jobID, now)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return ErrJobNotFound
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO job_inactivations (job_id, reason, comment, send_email, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, job_id, reason, comment, send_email, created_at`,
			jobID, strings.TrimSpace(req.Reason), req.Comment, req.SendEmail, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobInactivation])
		return err
	})
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to inactivate job: %w", err)
	}
	return &out, nil
}

// ListInactivations returns the moderation audit trail for a job, newest first.
func (r *JobRepo) ListInactivations(ctx context.Context, jobID string) ([]*model.JobInactivation, error) {
	var rowsOut []model.JobInactivation
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, job_id, reason, comment, send_email, created_at
			FROM job_inactivations
			WHERE job_id = $1
			ORDER BY created_at DESC`, jobID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobInactivation])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list job inactivations: %w", err)
	}

	res := make([]*model.JobInactivation, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// --- helpers ---

// jobColumnList is the standard column list for job queries.
const jobColumnList = `id, title, description, location, email, seniority, remote_work, tags, company_id, owner_id, is_active, created_at, updated_at`

// SQL query constants for static queries (no dynamic WHERE/ORDER BY).
const (
	jobGetByIDQuery = `
		SELECT ` + jobColumnList + `
		FROM jobs
		WHERE id = $1`

	jobListSponsoredQuery = `
		SELECT j.id, j.title, j.description, j.location, j.email, j.seniority, j.remote_work,
		       j.tags, j.company_id, j.owner_id, j.is_active, j.created_at, j.updated_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.is_active AND j.created_at >= $1 AND c.rank > 0
		ORDER BY j.created_at DESC
		LIMIT $2`

	jobListRecentQuery = `
		SELECT j.id, j.title, j.description, j.location, j.email, j.seniority, j.remote_work,
		       j.tags, j.company_id, j.owner_id, j.is_active, j.created_at, j.updated_at,
		       COALESCE(c.name, '') AS company_name, COALESCE(c.url, '') AS company_url
		FROM jobs j
		LEFT JOIN companies c ON c.id = j.company_id
		ORDER BY j.created_at DESC
		LIMIT $1`

	// nonSponsoredCond keeps jobs with no company or a company outside the
	// sponsored tier.
	nonSponsoredCond = `(company_id IS NULL OR company_id NOT IN (SELECT id FROM companies WHERE rank > $1))`
)

func jobColumns() []string {
	return []string{
		"id",
		"title",
		"description",
		"location",
		"email",
		"seniority",
		"remote_work",
		"tags",
		"company_id",
		"owner_id",
		"is_active",
		"created_at",
		"updated_at",
	}
}

// buildNonSponsoredOptions assembles the filter pipeline: base eligibility
// predicates, then field filters, then the remote filter, then the date
// bucket. All predicates are independent and compose by conjunction.
func (r *JobRepo) buildNonSponsoredOptions(opts model.JobsListOptions, countOnly bool) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithCondition(database.WhereCond("is_active", database.Equal, true)),
		database.WithCondition(database.WhereRawCond(nonSponsoredCond, 0)),
	}
	if !opts.Since.IsZero() {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("created_at", database.GreaterThanOrEqual, opts.Since)))
	}

	queryOpts = append(queryOpts, filterConditions(opts)...)

	if countOnly {
		queryOpts = append(queryOpts, database.WithCountOnly())
	} else {
		queryOpts = append(queryOpts,
			database.WithColumns(jobColumns()...),
			database.WithOrderBy("created_at", "desc"),
		)
		if opts.Limit > 0 {
			queryOpts = append(queryOpts, database.WithLimit(opts.Limit))
		}
		if opts.Offset > 0 {
			queryOpts = append(queryOpts, database.WithOffset(opts.Offset))
		}
	}

	return database.NewListQueryOptions("jobs", queryOpts...)
}

// likeEscaper neutralizes LIKE metacharacters so filter input matches as a
// literal substring. Postgres treats backslash as the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(v string) string {
	return likeEscaper.Replace(v)
}

// filterConditions translates JobFilters into WHERE conditions. Each filter
// is a no-op when its input is absent.
func filterConditions(opts model.JobsListOptions) []database.ListQueryOption {
	f := opts.Filters
	conds := make([]database.ListQueryOption, 0, 6)

	if v := strings.TrimSpace(f.Title); v != "" {
		conds = append(conds, database.WithCondition(
			database.WhereCond("title", database.ILike, "%"+escapeLike(v)+"%")))
	}
	if v := strings.TrimSpace(f.Location); v != "" {
		conds = append(conds, database.WithCondition(
			database.WhereCond("location", database.ILike, "%"+escapeLike(v)+"%")))
	}
	if v := strings.TrimSpace(f.Seniority); v != "" {
		conds = append(conds, database.WithCondition(
			database.WhereCond("seniority", database.Equal, v)))
	}
	if v := strings.TrimSpace(f.CompanyID); v != "" {
		conds = append(conds, database.WithCondition(
			database.WhereCond("company_id", database.Equal, v)))
	}

	switch f.RemoteWork {
	case model.RemoteFilterRemote:
		conds = append(conds, database.WithCondition(
			database.WhereCond("remote_work", database.Equal, true)))
	case model.RemoteFilterOnsite:
		conds = append(conds, database.WithCondition(
			database.WhereCond("remote_work", database.Equal, false)))
	}

	if from, to, ok := f.Created.Range(opts.Now); ok {
		conds = append(conds,
			database.WithCondition(database.WhereCond("created_at", database.GreaterThanOrEqual, from)),
			database.WithCondition(database.WhereCond("created_at", database.LessThanOrEqual, to)),
		)
	}

	return conds
}

func toJobPtrs(rows []model.Job) []*model.Job {
	res := make([]*model.Job, len(rows))
	for i := range rows {
		res[i] = &rows[i]
	}
	return res
}

package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pyar/jobboard/internal/data/database"
	"github.com/pyar/jobboard/internal/data/pgxutil"
	"github.com/pyar/jobboard/internal/domain/model"
)

// ErrCompanyNotFound is returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepo provides database operations for companies.
type CompanyRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const companyColumnList = `id, owner_id, owner_email, name, url, rank, created_at`

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	if req == nil {
		return nil, errors.New("create company request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO companies (owner_id, owner_email, name, url, rank, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+companyColumnList,
			req.OwnerID,
			strings.TrimSpace(req.OwnerEmail),
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.URL),
			req.Rank,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a company by ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	var company model.Company
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+companyColumnList+` FROM companies WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		company, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}
	return &company, nil
}

// List returns all companies ordered by name. Sponsored companies are not
// special-cased here; rank is part of the row.
func (r *CompanyRepo) List(ctx context.Context) ([]*model.Company, error) {
	query, args := database.BuildListQuery(database.NewListQueryOptions("companies",
		database.WithColumns("id", "owner_id", "owner_email", "name", "url", "rank", "created_at"),
		database.WithOrderBy("name", "asc"),
	))

	var rowsOut []model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	res := make([]*model.Company, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetRank updates a company's sponsorship rank.
func (r *CompanyRepo) SetRank(ctx context.Context, id string, rank int) (*model.Company, error) {
	if rank < 0 {
		return nil, errors.New("rank must be >= 0")
	}
	var out model.Company
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE companies SET rank = $2
			WHERE id = $1
			RETURNING `+companyColumnList, id, rank)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to set company rank: %w", err)
	}
	return &out, nil
}

// Delete deletes a company by ID. Jobs referencing it keep their rows;
// the FK sets company_id to NULL.
func (r *CompanyRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete company: %w", err)
	}
	return rows > 0, nil
}

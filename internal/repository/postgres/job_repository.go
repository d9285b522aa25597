package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hirewire/internal/common"
	"hirewire/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, posted_by, title, company_name, department, description, location, job_type, workplace, job_level, max_response_time, min_salary, max_salary, status, created_at`

func (r *JobRepository) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = common.NewUUID()
	posting.CreatedAt = time.Now().UTC()
	if posting.Status == "" {
		posting.Status = "Active"
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		posting.ID, posting.PostedBy, posting.Title, posting.CompanyName, posting.Department, posting.Description,
		posting.Location, posting.Type, posting.Workplace, posting.JobLevel, posting.MaxResponseTime,
		posting.MinSalary, posting.MaxSalary, posting.Status, posting.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &posting, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	var posting job.Job
	if err := scanJob(row.Scan, &posting); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &posting, nil
}

func (r *JobRepository) ListPublic(ctx context.Context, limit int) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID common.UUID, limit int) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $2`, employerID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, employerID)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list employer jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) CountByEmployer(ctx context.Context, employerID common.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`, employerID).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}
	return count, nil
}

func (r *JobRepository) CountByEmployerAndStatus(ctx context.Context, employerID common.UUID, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1 AND status = $2`, employerID, status).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}
	return count, nil
}

func collectJobs(rows *sql.Rows) ([]job.Job, error) {
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var posting job.Job
		if err := scanJob(rows.Scan, &posting); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, posting)
	}
	return items, nil
}

func scanJob(scan func(dest ...any) error, posting *job.Job) error {
	return scan(&posting.ID, &posting.PostedBy, &posting.Title, &posting.CompanyName, &posting.Department,
		&posting.Description, &posting.Location, &posting.Type, &posting.Workplace, &posting.JobLevel,
		&posting.MaxResponseTime, &posting.MinSalary, &posting.MaxSalary, &posting.Status, &posting.CreatedAt)
}

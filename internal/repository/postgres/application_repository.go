package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"hirewire/internal/common"
	"hirewire/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, candidate_id, candidate_name, candidate_email, message, status, created_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		app.ID, app.JobID, app.CandidateID, app.CandidateName, app.CandidateEmail, app.Message, app.Status, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.CandidateApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, a.candidate_id, a.candidate_name, a.candidate_email, a.message, a.status, a.created_at, a.updated_at,
			j.title, j.company_name, j.location, j.job_type
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.candidate_id = $1
		ORDER BY a.created_at DESC`, candidateID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidate applications", err)
	}
	defer rows.Close()
	var items []application.CandidateApplication
	for rows.Next() {
		var item application.CandidateApplication
		if err := rows.Scan(&item.ID, &item.JobID, &item.CandidateID, &item.CandidateName, &item.CandidateEmail,
			&item.Message, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.JobTitle, &item.CompanyName, &item.JobLocation, &item.JobType); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID common.UUID, statuses []application.Status) ([]application.Summary, error) {
	query := `SELECT a.id, a.candidate_name, a.candidate_email, a.job_id, j.title, a.status, a.created_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.posted_by = $1`
	args := []any{employerID}
	if len(statuses) > 0 {
		filter := make([]string, 0, len(statuses))
		for _, status := range statuses {
			filter = append(filter, string(status))
		}
		query += ` AND a.status = ANY($2)`
		args = append(args, pq.Array(filter))
	}
	query += ` ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list employer applications", err)
	}
	defer rows.Close()
	var items []application.Summary
	for rows.Next() {
		var item application.Summary
		if err := rows.Scan(&item.ID, &item.CandidateName, &item.CandidateEmail, &item.JobID, &item.JobTitle, &item.Status, &item.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan applicant", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateStatusIf is a compare-and-set: the write lands only when the
// stored status still equals from, so two concurrent transitions cannot
// both succeed.
func (r *ApplicationRepository) UpdateStatusIf(ctx context.Context, id common.UUID, from, to application.Status) (*application.Application, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, updatedAt, id, from)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, common.NewError(common.CodeConflict, "already processed", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID common.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func scanApplication(row *sql.Row) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.JobID, &app.CandidateID, &app.CandidateName, &app.CandidateEmail,
		&app.Message, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

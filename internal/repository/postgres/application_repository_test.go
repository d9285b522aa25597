package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"hirewire/internal/common"
	"hirewire/internal/domain/application"
)

const selectApplicationQuery = `SELECT id, job_id, candidate_id, candidate_name, candidate_email, message, status, created_at, updated_at FROM applications WHERE id = $1`

func applicationRow(id common.UUID, status application.Status) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "job_id", "candidate_id", "candidate_name", "candidate_email", "message", "status", "created_at", "updated_at"}).
		AddRow(string(id), "7b6d2b1c-9f6e-4a3b-8a36-2f9f6f0f1c11", "a2a5e3de-3e43-4a55-9c12-5f72a1b2c3d4", "Dana Reyes", "dana@mail.test", "", string(status), now, now)
}

func TestApplicationRepositoryUpdateStatusIf_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected sqlmock, got %v", err)
	}
	defer db.Close()
	repo := NewApplicationRepository(db)
	id := common.NewUUID()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`)).
		WithArgs(string(application.StatusShortlisted), sqlmock.AnyArg(), string(id), string(application.StatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectApplicationQuery)).
		WithArgs(string(id)).
		WillReturnRows(applicationRow(id, application.StatusShortlisted))

	updated, err := repo.UpdateStatusIf(context.Background(), id, application.StatusPending, application.StatusShortlisted)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != application.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %s", updated.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryUpdateStatusIf_LostRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected sqlmock, got %v", err)
	}
	defer db.Close()
	repo := NewApplicationRepository(db)
	id := common.NewUUID()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`)).
		WithArgs(string(application.StatusShortlisted), sqlmock.AnyArg(), string(id), string(application.StatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(selectApplicationQuery)).
		WithArgs(string(id)).
		WillReturnRows(applicationRow(id, application.StatusRejected))

	_, err = repo.UpdateStatusIf(context.Background(), id, application.StatusPending, application.StatusShortlisted)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryUpdateStatusIf_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected sqlmock, got %v", err)
	}
	defer db.Close()
	repo := NewApplicationRepository(db)
	id := common.NewUUID()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`)).
		WithArgs(string(application.StatusShortlisted), sqlmock.AnyArg(), string(id), string(application.StatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(selectApplicationQuery)).
		WithArgs(string(id)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "candidate_id", "candidate_name", "candidate_email", "message", "status", "created_at", "updated_at"}))

	_, err = repo.UpdateStatusIf(context.Background(), id, application.StatusPending, application.StatusShortlisted)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestApplicationRepositoryCreate_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected sqlmock, got %v", err)
	}
	defer db.Close()
	repo := NewApplicationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO applications`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Create(context.Background(), application.Application{
		JobID:       common.NewUUID(),
		CandidateID: common.NewUUID(),
	})
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

package application

import (
	"context"

	"hirewire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID common.UUID) ([]CandidateApplication, error)
	// ListByEmployer returns applications against the employer's jobs,
	// newest first. An empty statuses slice means no status filter.
	ListByEmployer(ctx context.Context, employerID common.UUID, statuses []Status) ([]Summary, error)
	// UpdateStatusIf sets the status only when the stored status still
	// equals from. A lost race surfaces as a conflict error.
	UpdateStatusIf(ctx context.Context, id common.UUID, from, to Status) (*Application, error)
	CountByJob(ctx context.Context, jobID common.UUID) (int, error)
}

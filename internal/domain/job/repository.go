package job

import (
	"context"

	"hirewire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, posting Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListPublic(ctx context.Context, limit int) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID common.UUID, limit int) ([]Job, error)
	CountByEmployer(ctx context.Context, employerID common.UUID) (int, error)
	CountByEmployerAndStatus(ctx context.Context, employerID common.UUID, status string) (int, error)
}

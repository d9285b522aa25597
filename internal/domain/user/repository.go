package user

import (
	"context"

	"hirewire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, account User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
}

package post

import (
	"context"

	"hirewire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, p Post) (*Post, error)
	GetByID(ctx context.Context, id common.UUID) (*Post, error)
	List(ctx context.Context, limit int) ([]Post, error)
	AddComment(ctx context.Context, postID common.UUID, comment Comment) (*Comment, error)
	// ToggleLike adds userName to the post's likes, or removes it when
	// already present, and returns the updated post.
	ToggleLike(ctx context.Context, postID common.UUID, userName string) (*Post, error)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"hirewire/internal/common"
	"hirewire/internal/domain/post"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `id, user_name, headline, body, file_url, file_type, likes, created_at, updated_at`

func (r *PostRepository) Create(ctx context.Context, p post.Post) (*post.Post, error) {
	p.ID = common.NewUUID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Likes == nil {
		p.Likes = []string{}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserName, p.Headline, p.Text, p.FileURL, p.FileType, pq.Array(p.Likes), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create post", err)
	}
	p.Comments = []post.Comment{}
	return &p, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id common.UUID) (*post.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	var p post.Post
	if err := row.Scan(&p.ID, &p.UserName, &p.Headline, &p.Text, &p.FileURL, &p.FileType, pq.Array(&p.Likes), &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "post not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load post", err)
	}
	comments, err := r.listComments(ctx, []common.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.Comments = comments[p.ID]
	if p.Comments == nil {
		p.Comments = []post.Comment{}
	}
	return &p, nil
}

func (r *PostRepository) List(ctx context.Context, limit int) ([]post.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list posts", err)
	}
	defer rows.Close()
	var items []post.Post
	var ids []common.UUID
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.UserName, &p.Headline, &p.Text, &p.FileURL, &p.FileType, pq.Array(&p.Likes), &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan post", err)
		}
		p.Comments = []post.Comment{}
		items = append(items, p)
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return items, nil
	}
	comments, err := r.listComments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if found := comments[items[i].ID]; found != nil {
			items[i].Comments = found
		}
	}
	return items, nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID common.UUID, comment post.Comment) (*post.Comment, error) {
	comment.ID = common.NewUUID()
	comment.PostID = postID
	comment.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO post_comments (id, post_id, user_name, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.PostID, comment.UserName, comment.Text, comment.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create comment", err)
	}
	_, err = r.db.ExecContext(ctx, `UPDATE posts SET updated_at = $1 WHERE id = $2`, comment.CreatedAt, postID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to touch post", err)
	}
	return &comment, nil
}

// ToggleLike flips membership of userName in the likes array with two
// guarded updates, so concurrent toggles cannot duplicate an entry.
func (r *PostRepository) ToggleLike(ctx context.Context, postID common.UUID, userName string) (*post.Post, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET likes = array_remove(likes, $1), updated_at = $2
		WHERE id = $3 AND $1 = ANY(likes)`, userName, now, postID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update likes", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		_, err = r.db.ExecContext(ctx, `UPDATE posts SET likes = array_append(likes, $1), updated_at = $2
			WHERE id = $3 AND NOT ($1 = ANY(likes))`, userName, now, postID)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to update likes", err)
		}
	}
	return r.GetByID(ctx, postID)
}

func (r *PostRepository) listComments(ctx context.Context, postIDs []common.UUID) (map[common.UUID][]post.Comment, error) {
	ids := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		ids = append(ids, id.String())
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, post_id, user_name, body, created_at FROM post_comments
		WHERE post_id = ANY($1) ORDER BY created_at ASC`, pq.Array(ids))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list comments", err)
	}
	defer rows.Close()
	grouped := make(map[common.UUID][]post.Comment)
	for rows.Next() {
		var comment post.Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserName, &comment.Text, &comment.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan comment", err)
		}
		grouped[comment.PostID] = append(grouped[comment.PostID], comment)
	}
	return grouped, nil
}

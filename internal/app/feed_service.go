package app

import (
	"context"
	"strings"

	"hirewire/internal/common"
	"hirewire/internal/domain/post"
	"hirewire/internal/domain/user"
)

const feedLimit = 50

// FeedService owns the social feed. Posts and comments are stamped with
// the author's current display name rather than a user reference.
type FeedService struct {
	posts post.Repository
	users user.Repository
}

func NewFeedService(posts post.Repository, users user.Repository) *FeedService {
	return &FeedService{posts: posts, users: users}
}

func (s *FeedService) CreatePost(ctx context.Context, authorID common.UUID, headline, text, fileURL, fileType string) (*post.Post, error) {
	if strings.TrimSpace(text) == "" && strings.TrimSpace(fileURL) == "" {
		return nil, common.NewValidationError("empty post", map[string]string{"text": "text or file_url is required"})
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, post.Post{
		UserName: author.Name,
		Headline: strings.TrimSpace(headline),
		Text:     text,
		FileURL:  strings.TrimSpace(fileURL),
		FileType: strings.TrimSpace(fileType),
	})
}

func (s *FeedService) ListPosts(ctx context.Context) ([]post.Post, error) {
	return s.posts.List(ctx, feedLimit)
}

func (s *FeedService) AddComment(ctx context.Context, authorID, postID common.UUID, text string) (*post.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.NewValidationError("empty comment", map[string]string{"text": "text is required"})
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.posts.AddComment(ctx, postID, post.Comment{UserName: author.Name, Text: text})
}

func (s *FeedService) ToggleLike(ctx context.Context, userID, postID common.UUID) (*post.Post, error) {
	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.posts.ToggleLike(ctx, postID, account.Name)
}

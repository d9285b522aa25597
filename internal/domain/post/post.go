package post

import (
	"time"

	"hirewire/internal/common"
)

type Comment struct {
	ID        common.UUID `json:"id"`
	PostID    common.UUID `json:"-"`
	UserName  string      `json:"user_name"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

type Post struct {
	ID        common.UUID `json:"id"`
	UserName  string      `json:"user_name"`
	Headline  string      `json:"headline,omitempty"`
	Text      string      `json:"text,omitempty"`
	FileURL   string      `json:"file_url,omitempty"`
	FileType  string      `json:"file_type,omitempty"`
	Likes     []string    `json:"likes"`
	Comments  []Comment   `json:"comments"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

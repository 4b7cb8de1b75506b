package types

import (
	"time"

	"VideoTube/pkg/pagination"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CommentView struct {
	ID        int64       `json:"id,string"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Owner     UserProfile `json:"owner"`
	IsLiked   bool        `json:"is_liked"`
}

type CommentListResponse struct {
	Comments []*CommentView  `json:"comments"`
	Meta     pagination.Meta `json:"meta"`
}

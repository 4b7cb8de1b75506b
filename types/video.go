package types

import (
	"time"

	"VideoTube/models"
	"VideoTube/pkg/pagination"
)

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=200"`
	Description string  `form:"description" binding:"max=5000"`
	Duration    float64 `form:"duration" binding:"gte=0"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"omitempty,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
}

type ListVideosRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sort_by"`
	SortType string `form:"sort_type"`
	UserID   int64  `form:"user_id"`
}

// VideoDetail 视频详情视图：实体 + 作者 + 互动聚合，逐请求现算
type VideoDetail struct {
	ID               int64       `json:"id,string"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	VideoFile        string      `json:"video_file"`
	Thumbnail        string      `json:"thumbnail"`
	Duration         float64     `json:"duration"`
	Views            int64       `json:"views"`
	IsPublished      bool        `json:"is_published"`
	CreatedAt        time.Time   `json:"created_at"`
	Owner            UserProfile `json:"owner"`
	LikesCount       int64       `json:"likes_count"`
	IsLiked          bool        `json:"is_liked"`
	SubscribersCount int64       `json:"subscribers_count"`
	IsSubscribed     bool        `json:"is_subscribed"`
}

type VideoListItem struct {
	*models.Video
	Owner UserProfile `json:"owner"`
}

type VideoListResponse struct {
	Videos []*VideoListItem `json:"videos"`
	Meta   pagination.Meta  `json:"meta"`
}

type WatchHistoryResponse struct {
	Videos []*VideoListItem `json:"videos"`
	Meta   pagination.Meta  `json:"meta"`
}

package types

import "VideoTube/models"

type ToggleLikeResponse struct {
	IsLiked bool `json:"is_liked"`
}

// LikedVideo 我点过赞的视频，附带该视频当前总赞数
type LikedVideo struct {
	Video      *models.Video `json:"video"`
	Owner      UserProfile   `json:"owner"`
	TotalLikes int64         `json:"total_likes"`
	IsLiked    bool          `json:"is_liked"`
}

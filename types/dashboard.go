package types

// ChannelStats 创作中心统计，空集一律报 0
type ChannelStats struct {
	TotalVideos        int64 `json:"total_videos"`
	TotalVideoViews    int64 `json:"total_video_views"`
	TotalVideoLikes    int64 `json:"total_video_likes"`
	TotalVideoComments int64 `json:"total_video_comments"`
	TotalTweets        int64 `json:"total_tweets"`
	TotalTweetLikes    int64 `json:"total_tweet_likes"`
	TotalTweetComments int64 `json:"total_tweet_comments"`
	TotalSubscribers   int64 `json:"total_subscribers"`
}

// ChannelVideo 创作中心的视频条目，带各自的点赞/评论数
type ChannelVideo struct {
	ID            int64  `json:"id,string"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	VideoFile     string `json:"video_file"`
	Thumbnail     string `json:"thumbnail"`
	Views         int64  `json:"views"`
	IsPublished   bool   `json:"is_published"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
	CreatedAt     string `json:"created_at"`
}

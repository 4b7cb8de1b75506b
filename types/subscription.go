package types

import "VideoTube/models"

type ToggleSubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriberView 频道的订阅者，附带互关标记和该订阅者自己的粉丝数
type SubscriberView struct {
	Subscriber             UserProfile `json:"subscriber"`
	SubscribedToSubscriber bool        `json:"subscribed_to_subscriber"`
	SubscribersCount       int64       `json:"subscribers_count"`
}

// ChannelView 用户订阅的频道，附带频道最新一条视频（没有则省略）
type ChannelView struct {
	Channel     UserProfile   `json:"channel"`
	LatestVideo *models.Video `json:"latest_video,omitempty"`
}

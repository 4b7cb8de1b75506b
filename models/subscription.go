package models

import "time"

// Subscription 订阅边
// 唯一键 (subscriber_id, channel_id)：同一用户对同一频道至多一条
type Subscription struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id,string"`
	SubscriberID int64     `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_channel,priority:1" json:"subscriber_id,string"`
	ChannelID    int64     `gorm:"column:channel_id;not null;uniqueIndex:uk_subscriber_channel,priority:2;index:idx_channel" json:"channel_id,string"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

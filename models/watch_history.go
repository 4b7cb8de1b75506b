package models

import "time"

// WatchHistory 观看历史
// 唯一键 (user_id, video_id)：集合语义，重复观看不追加
type WatchHistory struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id,string"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_video,priority:1" json:"user_id,string"`
	VideoID   int64     `gorm:"column:video_id;not null;uniqueIndex:uk_user_video,priority:2" json:"video_id,string"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (WatchHistory) TableName() string {
	return "watch_history"
}

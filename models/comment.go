package models

import "time"

// Comment 评论，挂在视频或推文下（target_kind 只允许 video/tweet）
type Comment struct {
	ID         int64      `gorm:"column:id;primary_key" json:"id,string"`
	UserID     int64      `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id,string"`
	TargetKind TargetKind `gorm:"column:target_kind;not null;index:idx_target,priority:1" json:"target_kind"`
	TargetID   int64      `gorm:"column:target_id;not null;index:idx_target,priority:2" json:"target_id,string"`
	Content    string     `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt  time.Time  `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

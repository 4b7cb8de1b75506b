package models

import "time"

// TargetKind 点赞/评论目标的类型标签
// 一条记录只挂一个 (kind, id) 对，避免"三个可空外键里恰好一个非空"的隐式约束
type TargetKind int8

const (
	TargetVideo   TargetKind = 1
	TargetComment TargetKind = 2
	TargetTweet   TargetKind = 3
)

func (k TargetKind) Valid() bool {
	return k == TargetVideo || k == TargetComment || k == TargetTweet
}

func (k TargetKind) String() string {
	switch k {
	case TargetVideo:
		return "video"
	case TargetComment:
		return "comment"
	case TargetTweet:
		return "tweet"
	default:
		return "unknown"
	}
}

// Like 点赞边
// 唯一键 (user_id, target_kind, target_id)：同一用户对同一目标至多一条，
// 开关操作的并发正确性依赖这条约束
type Like struct {
	ID         int64      `gorm:"column:id;primary_key" json:"id,string"`
	UserID     int64      `gorm:"column:user_id;not null;uniqueIndex:uk_user_target,priority:1" json:"user_id,string"`
	TargetKind TargetKind `gorm:"column:target_kind;not null;uniqueIndex:uk_user_target,priority:2;index:idx_target" json:"target_kind"`
	TargetID   int64      `gorm:"column:target_id;not null;uniqueIndex:uk_user_target,priority:3;index:idx_target" json:"target_id,string"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

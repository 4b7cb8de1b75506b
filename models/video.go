package models

import (
	"time"

	"gorm.io/datatypes"
)

type Video struct {
	ID          int64          `gorm:"column:id;primary_key" json:"id,string"`
	UserID      int64          `gorm:"column:user_id;not null;index:idx_userid_published" json:"user_id,string"`
	Title       string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	VideoFile   string         `gorm:"column:video_file;type:varchar(512);not null" json:"video_file"`
	Thumbnail   string         `gorm:"column:thumbnail;type:varchar(512);not null" json:"thumbnail"`
	Duration    float64        `gorm:"column:duration;not null;default:0" json:"duration"`
	Views       int64          `gorm:"column:views;not null;default:0" json:"views"`
	IsPublished bool           `gorm:"column:is_published;not null;default:1;index:idx_userid_published" json:"is_published"`
	MediaMeta   datatypes.JSON `gorm:"column:media_meta" json:"media_meta,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

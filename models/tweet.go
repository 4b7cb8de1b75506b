package models

import (
	"time"
)

type Tweet struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id,string"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id,string"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}

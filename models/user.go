package models

import (
	"time"
)

type User struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id,string"`
	UserName   string    `gorm:"column:user_name;type:varchar(64);not null;uniqueIndex:uk_user_name" json:"user_name"`
	FullName   string    `gorm:"column:full_name;type:varchar(64);not null;default:''" json:"full_name"`
	Email      string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uk_email" json:"email"`
	Password   string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Avatar     string    `gorm:"column:avatar;type:varchar(512);not null;default:''" json:"avatar"`
	CoverImage string    `gorm:"column:cover_image;type:varchar(512);not null;default:''" json:"cover_image"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

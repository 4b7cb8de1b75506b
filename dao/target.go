package dao

import (
	"context"
	"fmt"

	"VideoTube/models"

	"gorm.io/gorm"
)

// TargetDAO 统一回答"这个 (kind, id) 目标存在吗"
// 点赞/评论落库前的前置校验都走这里
type TargetDAO struct {
	Db *gorm.DB
}

func NewTargetDAO(db *gorm.DB) *TargetDAO {
	return &TargetDAO{Db: db}
}

func (d *TargetDAO) Exists(ctx context.Context, kind models.TargetKind, id int64) (bool, error) {
	var model any
	switch kind {
	case models.TargetVideo:
		model = &models.Video{}
	case models.TargetComment:
		model = &models.Comment{}
	case models.TargetTweet:
		model = &models.Tweet{}
	default:
		return false, fmt.Errorf("unknown target kind: %d", kind)
	}

	var count int64
	err := d.Db.WithContext(ctx).Model(model).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

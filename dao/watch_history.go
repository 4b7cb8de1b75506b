package dao

import (
	"context"

	"VideoTube/models"
	"VideoTube/pkg/pagination"
	"VideoTube/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryDAO struct {
	Repo[models.WatchHistory]
}

func NewWatchHistoryDAO(db *gorm.DB) *WatchHistoryDAO {
	return &WatchHistoryDAO{Repo: NewRepo[models.WatchHistory](db)}
}

// Add 记录观看历史，集合语义：重复观看静默忽略
func (d *WatchHistoryDAO) Add(ctx context.Context, userID, videoID int64) error {
	item := &models.WatchHistory{
		ID:      snowflake.GenID(),
		UserID:  userID,
		VideoID: videoID,
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item).Error
}

// ListByUser 用户的观看历史，最近看的在前
func (d *WatchHistoryDAO) ListByUser(ctx context.Context, userID int64, page, limit int) ([]*models.WatchHistory, int64, error) {
	base := d.Db.WithContext(ctx).Model(&models.WatchHistory{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*models.WatchHistory
	err := base.Scopes(pagination.Scope(page, limit, "created_at", "desc")).Find(&items).Error
	return items, total, err
}

// DeleteByVideo 视频删除后清掉相关历史
func (d *WatchHistoryDAO) DeleteByVideo(ctx context.Context, videoID int64) (int64, error) {
	return d.DeleteByWhere(ctx, "video_id = ?", videoID)
}

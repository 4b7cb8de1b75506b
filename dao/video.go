package dao

import (
	"context"

	"VideoTube/models"
	"VideoTube/pkg/pagination"

	"gorm.io/gorm"
)

type VideoDAO struct {
	Repo[models.Video]
}

func NewVideoDAO(db *gorm.DB) *VideoDAO {
	return &VideoDAO{Repo: NewRepo[models.Video](db)}
}

// GetByID 按 ID 查询视频，未命中返回 nil
func (d *VideoDAO) GetByID(ctx context.Context, videoID int64) (*models.Video, error) {
	return d.FindOne(ctx, "id = ?", videoID)
}

// GetOwner 只取归属信息，一次往返回答"存在吗、归谁"
func (d *VideoDAO) GetOwner(ctx context.Context, videoID int64) (*models.Video, error) {
	var item models.Video
	err := d.Db.WithContext(ctx).
		Select("id", "user_id", "video_file", "thumbnail").
		Where("id = ?", videoID).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// UpdateByID 按 ID 更新部分字段
func (d *VideoDAO) UpdateByID(ctx context.Context, videoID int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", videoID).
		Updates(data).Error
}

// DeleteByID 按 ID 删除，返回是否真的删掉了
func (d *VideoDAO) DeleteByID(ctx context.Context, videoID int64) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", videoID).Delete(&models.Video{})
	return res.RowsAffected > 0, res.Error
}

// IncrViews 观看数 +1，独立于读事务
func (d *VideoDAO) IncrViews(ctx context.Context, videoID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// ListPublished 已发布视频列表：可选标题/描述模糊过滤、按作者过滤，稳定排序分页
func (d *VideoDAO) ListPublished(ctx context.Context, query string, ownerID int64, page, limit int, sortBy, sortDir string) ([]*models.Video, int64, error) {
	base := d.Db.WithContext(ctx).Model(&models.Video{}).Where("is_published = ?", true)
	if query != "" {
		like := "%" + query + "%"
		base = base.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if ownerID > 0 {
		base = base.Where("user_id = ?", ownerID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []*models.Video
	err := base.Scopes(pagination.Scope(page, limit, sortBy, sortDir)).Find(&videos).Error
	return videos, total, err
}

// ListByOwner 作者的全部视频（含未发布），新→旧，稳定排序分页
func (d *VideoDAO) ListByOwner(ctx context.Context, ownerID int64, page, limit int) ([]*models.Video, int64, error) {
	base := d.Db.WithContext(ctx).Model(&models.Video{}).Where("user_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []*models.Video
	err := base.Scopes(pagination.Scope(page, limit, "created_at", "desc")).Find(&videos).Error
	return videos, total, err
}

// IDsByOwner 作者的全部视频 ID
func (d *VideoDAO) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// SumViewsByOwner 作者所有视频的总观看数，空集返回 0
func (d *VideoDAO) SumViewsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("user_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

// BatchLatestByOwners 每个作者最近发布的一条视频，owner_id -> video
func (d *VideoDAO) BatchLatestByOwners(ctx context.Context, ownerIDs []int64) (map[int64]*models.Video, error) {
	result := make(map[int64]*models.Video, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return result, nil
	}

	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", ownerIDs).
		Order("user_id, created_at DESC, id DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}

	// 分组取每组第一条
	for _, v := range videos {
		if _, ok := result[v.UserID]; !ok {
			result[v.UserID] = v
		}
	}
	return result, nil
}

// BatchGetByIDs 批量查询，id -> video
func (d *VideoDAO) BatchGetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Video, error) {
	result := make(map[int64]*models.Video, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var videos []*models.Video
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		result[v.ID] = v
	}
	return result, nil
}

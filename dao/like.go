package dao

import (
	"context"

	"VideoTube/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// GetEdge 查某个用户对某个目标的点赞边，未命中返回 nil
func (d *LikeDAO) GetEdge(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (*models.Like, error) {
	return d.FindOne(ctx, "user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID)
}

// DeleteByID 按边 ID 删除
func (d *LikeDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Like{}).Error
}

// ExistsEdge 当前用户是否点过赞
func (d *LikeDAO) ExistsEdge(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID)
}

// CountByTarget 单个目标的点赞数
func (d *LikeDAO) CountByTarget(ctx context.Context, kind models.TargetKind, targetID int64) (int64, error) {
	return d.CountByWhere(ctx, "target_kind = ? AND target_id = ?", kind, targetID)
}

// CountByTargets 一批目标的点赞数总和（空集返回 0）
func (d *LikeDAO) CountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []int64) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	return d.CountByWhere(ctx, "target_kind = ? AND target_id IN ?", kind, targetIDs)
}

// BatchCountByTargets 一批目标各自的点赞数，target_id -> count
func (d *LikeDAO) BatchCountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	type row struct {
		TargetID int64 `gorm:"column:target_id"`
		Count    int64 `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Select("target_id, COUNT(*) AS cnt").
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.TargetID] = r.Count
	}
	return result, nil
}

// BatchCheckExists 当前用户对一批目标的点赞状态，target_id -> 是否点赞
func (d *LikeDAO) BatchCheckExists(ctx context.Context, userID int64, kind models.TargetKind, targetIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id IN ?", userID, kind, targetIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, like := range likes {
		result[like.TargetID] = true
	}
	return result, nil
}

// ListVideoEdgesByUser 用户点过赞的视频边，新→旧
func (d *LikeDAO) ListVideoEdgesByUser(ctx context.Context, userID int64) ([]*models.Like, error) {
	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ?", userID, models.TargetVideo).
		Order("created_at DESC, id DESC").
		Find(&likes).Error
	return likes, err
}

// DeleteByTarget 删除目标上全部点赞边，返回删除行数（级联删除用）
func (d *LikeDAO) DeleteByTarget(ctx context.Context, kind models.TargetKind, targetID int64) (int64, error) {
	return d.DeleteByWhere(ctx, "target_kind = ? AND target_id = ?", kind, targetID)
}

// DeleteByTargets 删除一批目标上的全部点赞边
func (d *LikeDAO) DeleteByTargets(ctx context.Context, kind models.TargetKind, targetIDs []int64) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	return d.DeleteByWhere(ctx, "target_kind = ? AND target_id IN ?", kind, targetIDs)
}

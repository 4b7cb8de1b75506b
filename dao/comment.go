package dao

import (
	"context"

	"VideoTube/models"
	"VideoTube/pkg/pagination"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// GetByID 按 ID 查询评论，未命中返回 nil
func (d *CommentDAO) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	return d.FindOne(ctx, "id = ?", commentID)
}

// UpdateContent 更新评论正文
func (d *CommentDAO) UpdateContent(ctx context.Context, commentID int64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

// DeleteByID 按 ID 删除，返回是否真的删掉了
func (d *CommentDAO) DeleteByID(ctx context.Context, commentID int64) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", commentID).Delete(&models.Comment{})
	return res.RowsAffected > 0, res.Error
}

// ListByTarget 某个视频/推文下的评论，新→旧，稳定排序分页
func (d *CommentDAO) ListByTarget(ctx context.Context, kind models.TargetKind, targetID int64, page, limit int) ([]*models.Comment, int64, error) {
	base := d.Db.WithContext(ctx).Model(&models.Comment{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := base.Scopes(pagination.Scope(page, limit, "created_at", "desc")).Find(&comments).Error
	return comments, total, err
}

// CountByTargets 一批目标下的评论数总和（空集返回 0）
func (d *CommentDAO) CountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []int64) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	return d.CountByWhere(ctx, "target_kind = ? AND target_id IN ?", kind, targetIDs)
}

// BatchCountByTargets 一批目标各自的评论数，target_id -> count
func (d *CommentDAO) BatchCountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []int64) (map[int64]int64, error) {
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
		Model(&models.Comment{}).
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

// IDsByTarget 目标下全部评论 ID（级联删除用）
func (d *CommentDAO) IDsByTarget(ctx context.Context, kind models.TargetKind, targetID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteByTarget 删除目标下全部评论，返回删除行数
func (d *CommentDAO) DeleteByTarget(ctx context.Context, kind models.TargetKind, targetID int64) (int64, error) {
	return d.DeleteByWhere(ctx, "target_kind = ? AND target_id = ?", kind, targetID)
}

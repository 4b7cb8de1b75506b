package dao

import (
	"context"

	"VideoTube/models"
	"VideoTube/pkg/pagination"

	"gorm.io/gorm"
)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

// GetByID 按 ID 查询，未命中返回 nil
func (d *TweetDAO) GetByID(ctx context.Context, tweetID int64) (*models.Tweet, error) {
	return d.FindOne(ctx, "id = ?", tweetID)
}

// UpdateContent 更新正文
func (d *TweetDAO) UpdateContent(ctx context.Context, tweetID int64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Tweet{}).
		Where("id = ?", tweetID).
		Update("content", content).Error
}

// DeleteByID 按 ID 删除，返回是否真的删掉了
func (d *TweetDAO) DeleteByID(ctx context.Context, tweetID int64) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", tweetID).Delete(&models.Tweet{})
	return res.RowsAffected > 0, res.Error
}

// ListByOwner 用户的推文列表，稳定排序分页
func (d *TweetDAO) ListByOwner(ctx context.Context, ownerID int64, page, limit int) ([]*models.Tweet, int64, error) {
	base := d.Db.WithContext(ctx).Model(&models.Tweet{}).Where("user_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []*models.Tweet
	err := base.Scopes(pagination.Scope(page, limit, "created_at", "desc")).Find(&tweets).Error
	return tweets, total, err
}

// IDsByOwner 用户的全部推文 ID
func (d *TweetDAO) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Tweet{}).
		Where("user_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

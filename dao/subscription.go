package dao

import (
	"context"

	"VideoTube/models"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

// GetEdge 查订阅边，未命中返回 nil
func (d *SubscriptionDAO) GetEdge(ctx context.Context, subscriberID, channelID int64) (*models.Subscription, error) {
	return d.FindOne(ctx, "subscriber_id = ? AND channel_id = ?", subscriberID, channelID)
}

// DeleteByID 按边 ID 删除
func (d *SubscriptionDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Subscription{}).Error
}

// ExistsEdge 是否已订阅
func (d *SubscriptionDAO) ExistsEdge(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	return d.IsExist(ctx, "subscriber_id = ? AND channel_id = ?", subscriberID, channelID)
}

// CountByChannel 频道订阅数
func (d *SubscriptionDAO) CountByChannel(ctx context.Context, channelID int64) (int64, error) {
	return d.CountByWhere(ctx, "channel_id = ?", channelID)
}

// CountBySubscriber 用户订阅的频道数
func (d *SubscriptionDAO) CountBySubscriber(ctx context.Context, subscriberID int64) (int64, error) {
	return d.CountByWhere(ctx, "subscriber_id = ?", subscriberID)
}

// ListByChannel 频道的全部订阅边，老→新
func (d *SubscriptionDAO) ListByChannel(ctx context.Context, channelID int64) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := d.Db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at ASC, id ASC").
		Find(&subs).Error
	return subs, err
}

// ListBySubscriber 用户订阅的全部边，老→新
func (d *SubscriptionDAO) ListBySubscriber(ctx context.Context, subscriberID int64) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := d.Db.WithContext(ctx).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at ASC, id ASC").
		Find(&subs).Error
	return subs, err
}

// BatchCountByChannels 一批频道各自的订阅数，channel_id -> count
func (d *SubscriptionDAO) BatchCountByChannels(ctx context.Context, channelIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(channelIDs))
	if len(channelIDs) == 0 {
		return result, nil
	}

	type row struct {
		ChannelID int64 `gorm:"column:channel_id"`
		Count     int64 `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Select("channel_id, COUNT(*) AS cnt").
		Where("channel_id IN ?", channelIDs).
		Group("channel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.ChannelID] = r.Count
	}
	return result, nil
}

// BatchCheckSubscribed subscriberID 对一批频道的订阅状态，channel_id -> 是否订阅
// 互关标记用：查"频道本人反向订阅了哪些粉丝"时 subscriberID 传频道 ID
func (d *SubscriptionDAO) BatchCheckSubscribed(ctx context.Context, subscriberID int64, channelIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(channelIDs))
	if len(channelIDs) == 0 {
		return result, nil
	}

	var subs []*models.Subscription
	err := d.Db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id IN ?", subscriberID, channelIDs).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	for _, s := range subs {
		result[s.ChannelID] = true
	}
	return result, nil
}

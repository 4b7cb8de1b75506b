package service

import (
	"context"
	"errors"

	"VideoTube/dao"
	"VideoTube/models"
	"VideoTube/pkg/log"
	"VideoTube/pkg/response"
	"VideoTube/pkg/snowflake"
	"VideoTube/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error)
	GetChannelSubscribers(ctx context.Context, channelID int64) ([]*types.SubscriberView, error)
	GetSubscribedChannels(ctx context.Context, subscriberID int64) ([]*types.ChannelView, error)
}

// SubscriptionEdgeStore 订阅边的最小存储契约，*dao.SubscriptionDAO 实现
type SubscriptionEdgeStore interface {
	GetEdge(ctx context.Context, subscriberID, channelID int64) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	DeleteByID(ctx context.Context, id int64) error
}

// ChannelChecker 频道（即用户）存在性校验，*dao.UserDAO 实现
type ChannelChecker interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
}

type SubscriptionService struct {
	EdgeStore SubscriptionEdgeStore
	Channels  ChannelChecker
	SubDAO    *dao.SubscriptionDAO
	UserDAO   *dao.UserDAO
	VideoDAO  *dao.VideoDAO
}

// Toggle 订阅开关，与点赞同一套约定：唯一键兜底并发，冲突后重走一次删除分支
// 频道就是用户；给自己订阅不拦（沿用线上行为，见 DESIGN.md）
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	if channelID <= 0 {
		return false, response.ErrInvalidID
	}

	channel, err := s.Channels.GetByID(ctx, channelID)
	if err != nil {
		return false, err
	}
	if channel == nil {
		return false, response.ErrTargetNotFound
	}

	edge, err := s.EdgeStore.GetEdge(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if edge != nil {
		if err := s.EdgeStore.DeleteByID(ctx, edge.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	sub := &models.Subscription{
		ID:           snowflake.GenID(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	err = s.EdgeStore.Create(ctx, sub)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}

	log.L.Info("subscription toggle hit duplicate edge, retrying delete path",
		zap.Int64("subscriber_id", subscriberID),
		zap.Int64("channel_id", channelID))

	edge, err = s.EdgeStore.GetEdge(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if edge == nil {
		return false, nil
	}
	if err := s.EdgeStore.DeleteByID(ctx, edge.ID); err != nil {
		return false, err
	}
	return false, nil
}

// GetChannelSubscribers 频道的订阅者列表
// 每个订阅者带两个派生字段：频道是否反向订阅了他（互关）、他自己的粉丝数
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID int64) ([]*types.SubscriberView, error) {
	if channelID <= 0 {
		return nil, response.ErrInvalidID
	}
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", channelID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.ErrTargetNotFound
	}

	edges, err := s.SubDAO.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []*types.SubscriberView{}, nil
	}

	subscriberIDs := make([]int64, 0, len(edges))
	for _, e := range edges {
		subscriberIDs = append(subscriberIDs, e.SubscriberID)
	}

	userMap, err := s.UserDAO.BatchGetByIDs(ctx, subscriberIDs)
	if err != nil {
		return nil, err
	}
	// 频道本人反向订阅了哪些粉丝
	backSubs, err := s.SubDAO.BatchCheckSubscribed(ctx, channelID, subscriberIDs)
	if err != nil {
		return nil, err
	}
	// 每个粉丝自己的粉丝数
	counts, err := s.SubDAO.BatchCountByChannels(ctx, subscriberIDs)
	if err != nil {
		return nil, err
	}

	return buildSubscriberViews(edges, userMap, backSubs, counts), nil
}

// buildSubscriberViews 纯组装：把边集和各路查询结果拼成订阅者视图
func buildSubscriberViews(
	edges []*models.Subscription,
	users map[int64]*models.User,
	backSubs map[int64]bool,
	subscriberCounts map[int64]int64,
) []*types.SubscriberView {
	result := make([]*types.SubscriberView, 0, len(edges))
	for _, e := range edges {
		user, ok := users[e.SubscriberID]
		if !ok {
			continue
		}
		result = append(result, &types.SubscriberView{
			Subscriber:             toUserProfile(user),
			SubscribedToSubscriber: backSubs[e.SubscriberID],
			SubscribersCount:       subscriberCounts[e.SubscriberID],
		})
	}
	return result
}

// GetSubscribedChannels 用户订阅的频道列表，每个频道带最新一条视频
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID int64) ([]*types.ChannelView, error) {
	if subscriberID <= 0 {
		return nil, response.ErrInvalidID
	}

	edges, err := s.SubDAO.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []*types.ChannelView{}, nil
	}

	channelIDs := make([]int64, 0, len(edges))
	for _, e := range edges {
		channelIDs = append(channelIDs, e.ChannelID)
	}

	userMap, err := s.UserDAO.BatchGetByIDs(ctx, channelIDs)
	if err != nil {
		return nil, err
	}
	latestVideos, err := s.VideoDAO.BatchLatestByOwners(ctx, channelIDs)
	if err != nil {
		return nil, err
	}

	return buildChannelViews(edges, userMap, latestVideos), nil
}

// buildChannelViews 纯组装：频道档案 + 最新视频（没有则留空）
func buildChannelViews(
	edges []*models.Subscription,
	users map[int64]*models.User,
	latestVideos map[int64]*models.Video,
) []*types.ChannelView {
	result := make([]*types.ChannelView, 0, len(edges))
	for _, e := range edges {
		user, ok := users[e.ChannelID]
		if !ok {
			continue
		}
		result = append(result, &types.ChannelView{
			Channel:     toUserProfile(user),
			LatestVideo: latestVideos[e.ChannelID],
		})
	}
	return result
}

package service

import (
	"context"
	"time"

	"VideoTube/dao"
	"VideoTube/models"
	"VideoTube/pkg/pagination"
	"VideoTube/types"

	"github.com/sourcegraph/conc/pool"
)

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	GetChannelStats(ctx context.Context, channelID int64) (*types.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID int64, page, limit int) ([]*types.ChannelVideo, pagination.Meta, error)
}

type DashboardService struct {
	VideoDAO   *dao.VideoDAO
	TweetDAO   *dao.TweetDAO
	LikeDAO    *dao.LikeDAO
	CommentDAO *dao.CommentDAO
	SubDAO     *dao.SubscriptionDAO
}

// GetChannelStats 创作中心总览：视频/推文两条支线各自汇总赞和评论。
// 没有任何内容的频道照样返回，一律 0
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID int64) (*types.ChannelStats, error) {
	stats := &types.ChannelStats{}

	var videoIDs, tweetIDs []int64
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		videoIDs, err = s.VideoDAO.IDsByOwner(ctx, channelID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		tweetIDs, err = s.TweetDAO.IDsByOwner(ctx, channelID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		stats.TotalVideoViews, err = s.VideoDAO.SumViewsByOwner(ctx, channelID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		stats.TotalSubscribers, err = s.SubDAO.CountByChannel(ctx, channelID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	stats.TotalVideos = int64(len(videoIDs))
	stats.TotalTweets = int64(len(tweetIDs))

	p = pool.New().WithContext(ctx)
	if len(videoIDs) > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			stats.TotalVideoLikes, err = s.LikeDAO.CountByTargets(ctx, models.TargetVideo, videoIDs)
			return err
		})
		p.Go(func(ctx context.Context) error {
			var err error
			stats.TotalVideoComments, err = s.CommentDAO.CountByTargets(ctx, models.TargetVideo, videoIDs)
			return err
		})
	}
	if len(tweetIDs) > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			stats.TotalTweetLikes, err = s.LikeDAO.CountByTargets(ctx, models.TargetTweet, tweetIDs)
			return err
		})
		p.Go(func(ctx context.Context) error {
			var err error
			stats.TotalTweetComments, err = s.CommentDAO.CountByTargets(ctx, models.TargetTweet, tweetIDs)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetChannelVideos 创作中心视频列表，含未发布的，带逐条点赞/评论数
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelID int64, page, limit int) ([]*types.ChannelVideo, pagination.Meta, error) {
	page, limit = pagination.Normalize(page, limit)

	videos, total, err := s.VideoDAO.ListByOwner(ctx, channelID, page, limit)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	meta := pagination.NewMeta(page, limit, total)
	if len(videos) == 0 {
		return []*types.ChannelVideo{}, meta, nil
	}

	ids := make([]int64, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}

	var likeCounts, commentCounts map[int64]int64
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		likeCounts, err = s.LikeDAO.BatchCountByTargets(ctx, models.TargetVideo, ids)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		commentCounts, err = s.CommentDAO.BatchCountByTargets(ctx, models.TargetVideo, ids)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]*types.ChannelVideo, 0, len(videos))
	for _, v := range videos {
		items = append(items, &types.ChannelVideo{
			ID:            v.ID,
			Title:         v.Title,
			Description:   v.Description,
			VideoFile:     v.VideoFile,
			Thumbnail:     v.Thumbnail,
			Views:         v.Views,
			IsPublished:   v.IsPublished,
			LikesCount:    likeCounts[v.ID],
			CommentsCount: commentCounts[v.ID],
			CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		})
	}
	return items, meta, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"VideoTube/dao"
	"VideoTube/dao/cache"
	"VideoTube/models"
	"VideoTube/pkg/log"
	"VideoTube/pkg/pagination"
	"VideoTube/pkg/response"
	"VideoTube/pkg/snowflake"
	"VideoTube/types"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var _ IVideoService = (*VideoService)(nil)

type IVideoService interface {
	Publish(ctx context.Context, userID int64, req *types.PublishVideoRequest, videoFile, thumbnail *multipart.FileHeader) (*models.Video, error)
	GetVideoByID(ctx context.Context, videoID, viewerID int64) (*types.VideoDetail, error)
	List(ctx context.Context, req *types.ListVideosRequest) (*types.VideoListResponse, error)
	Update(ctx context.Context, userID, videoID int64, req *types.UpdateVideoRequest) (*models.Video, error)
	Delete(ctx context.Context, userID, videoID int64) error
	TogglePublish(ctx context.Context, userID, videoID int64) (bool, error)
	GetWatchHistory(ctx context.Context, userID int64, page, limit int) (*types.WatchHistoryResponse, error)
}

type VideoService struct {
	VideoDAO     *dao.VideoDAO
	UserDAO      *dao.UserDAO
	LikeDAO      *dao.LikeDAO
	SubDAO       *dao.SubscriptionDAO
	HistoryDAO   *dao.WatchHistoryDAO
	HistoryCache *cache.WatchHistoryCache
	Media        IMediaService
	Cascade      ICascadeService
}

// Publish 发布视频：先传视频再传封面，封面失败回收视频对象，
// 建档失败回收两个对象——对外要么有完整实体，要么什么都没有
func (s *VideoService) Publish(ctx context.Context, userID int64, req *types.PublishVideoRequest, videoFile, thumbnail *multipart.FileHeader) (*models.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: 标题不能为空", response.ErrValidation)
	}

	videoURL, meta, err := s.Media.UploadVideoFile(ctx, videoFile)
	if err != nil {
		return nil, err
	}

	thumbURL, err := s.Media.UploadThumbnail(ctx, thumbnail)
	if err != nil {
		if rerr := s.Media.Release(ctx, videoURL); rerr != nil {
			log.L.Error("rollback video object failed", zap.String("url", videoURL), zap.Error(rerr))
		}
		return nil, err
	}

	metaJSON, _ := json.Marshal(meta)
	video := &models.Video{
		ID:          snowflake.GenID(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Duration:    req.Duration,
		IsPublished: true,
		MediaMeta:   metaJSON,
	}
	if err := s.VideoDAO.Create(ctx, video); err != nil {
		for _, u := range []string{videoURL, thumbURL} {
			if rerr := s.Media.Release(ctx, u); rerr != nil {
				log.L.Error("rollback media object failed", zap.String("url", u), zap.Error(rerr))
			}
		}
		return nil, err
	}
	return video, nil
}

// GetVideoByID 视频详情视图：作者档案 + 点赞聚合 + 作者订阅聚合。
// 读成功后观看数 +1、写观看历史，两个副作用都不阻塞响应
func (s *VideoService) GetVideoByID(ctx context.Context, videoID, viewerID int64) (*types.VideoDetail, error) {
	if videoID <= 0 {
		return nil, response.ErrInvalidID
	}

	video, err := s.VideoDAO.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, response.ErrTargetNotFound
	}

	var (
		owner      *models.User
		likesCount int64
		isLiked    bool
		subsCount  int64
		subscribed bool
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		owner, err = s.UserDAO.GetByID(ctx, video.UserID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		likesCount, err = s.LikeDAO.CountByTarget(ctx, models.TargetVideo, videoID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		subsCount, err = s.SubDAO.CountByChannel(ctx, video.UserID)
		return err
	})
	if viewerID > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			isLiked, err = s.LikeDAO.ExistsEdge(ctx, viewerID, models.TargetVideo, videoID)
			return err
		})
		p.Go(func(ctx context.Context) error {
			var err error
			subscribed, err = s.SubDAO.ExistsEdge(ctx, viewerID, video.UserID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	detail := buildVideoDetail(video, owner, likesCount, isLiked, subsCount, subscribed)

	// 副作用与读事务分离：失败只记日志
	if err := s.VideoDAO.IncrViews(ctx, videoID); err != nil {
		log.L.Error("incr video views failed", zap.Int64("video_id", videoID), zap.Error(err))
	} else {
		detail.Views++
	}
	if viewerID > 0 {
		// 缓存命中说明近期已经记过这一条，省掉一次落库
		if !s.HistoryCache.Has(ctx, viewerID, videoID) {
			if err := s.HistoryDAO.Add(ctx, viewerID, videoID); err != nil {
				log.L.Error("append watch history failed",
					zap.Int64("user_id", viewerID), zap.Int64("video_id", videoID), zap.Error(err))
			}
		}
		if err := s.HistoryCache.Add(ctx, viewerID, videoID); err != nil {
			log.L.Warn("watch history cache add failed",
				zap.Int64("user_id", viewerID), zap.Int64("video_id", videoID), zap.Error(err))
		}
	}

	return detail, nil
}

// buildVideoDetail 纯组装，计数缺省为 0
func buildVideoDetail(video *models.Video, owner *models.User, likesCount int64, isLiked bool, subsCount int64, subscribed bool) *types.VideoDetail {
	return &types.VideoDetail{
		ID:               video.ID,
		Title:            video.Title,
		Description:      video.Description,
		VideoFile:        video.VideoFile,
		Thumbnail:        video.Thumbnail,
		Duration:         video.Duration,
		Views:            video.Views,
		IsPublished:      video.IsPublished,
		CreatedAt:        video.CreatedAt,
		Owner:            toUserProfile(owner),
		LikesCount:       likesCount,
		IsLiked:          isLiked,
		SubscribersCount: subsCount,
		IsSubscribed:     subscribed,
	}
}

// List 已发布视频列表，附作者摘要
func (s *VideoService) List(ctx context.Context, req *types.ListVideosRequest) (*types.VideoListResponse, error) {
	page, limit := pagination.Normalize(req.Page, req.Limit)

	videos, total, err := s.VideoDAO.ListPublished(ctx, req.Query, req.UserID, page, limit, req.SortBy, req.SortType)
	if err != nil {
		return nil, err
	}

	items, err := s.attachOwners(ctx, videos)
	if err != nil {
		return nil, err
	}
	return &types.VideoListResponse{
		Videos: items,
		Meta:   pagination.NewMeta(page, limit, total),
	}, nil
}

func (s *VideoService) attachOwners(ctx context.Context, videos []*models.Video) ([]*types.VideoListItem, error) {
	ownerIDs := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIDs = append(ownerIDs, v.UserID)
	}
	ownerMap, err := s.UserDAO.BatchGetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.VideoListItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, &types.VideoListItem{
			Video: v,
			Owner: toUserProfile(ownerMap[v.UserID]),
		})
	}
	return items, nil
}

// Update 只有作者能改
func (s *VideoService) Update(ctx context.Context, userID, videoID int64, req *types.UpdateVideoRequest) (*models.Video, error) {
	video, err := s.VideoDAO.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, response.ErrTargetNotFound
	}
	if video.UserID != userID {
		return nil, fmt.Errorf("%w: 只有作者能修改视频", response.ErrForbidden)
	}

	data := map[string]any{}
	if strings.TrimSpace(req.Title) != "" {
		data["title"] = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		data["description"] = req.Description
	}
	if len(data) == 0 {
		return video, nil
	}
	if err := s.VideoDAO.UpdateByID(ctx, videoID, data); err != nil {
		return nil, err
	}
	return s.VideoDAO.GetByID(ctx, videoID)
}

// Delete 删除视频：先删主记录，成功后才级联清边、释放媒体对象。
// 级联/释放失败不会把主记录救回来，上抛 ErrCascadeIncomplete
func (s *VideoService) Delete(ctx context.Context, userID, videoID int64) error {
	video, err := s.VideoDAO.GetOwner(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return response.ErrTargetNotFound
	}
	if video.UserID != userID {
		return fmt.Errorf("%w: 只有作者能删除视频", response.ErrForbidden)
	}

	deleted, err := s.VideoDAO.DeleteByID(ctx, videoID)
	if err != nil {
		return err
	}
	if !deleted {
		// 并发下已被删掉，主删除没发生就不级联
		return response.ErrTargetNotFound
	}

	cascadeErr := s.Cascade.OnVideoDeleted(ctx, videoID)

	var mediaErr error
	for _, u := range []string{video.VideoFile, video.Thumbnail} {
		if err := s.Media.Release(ctx, u); err != nil {
			mediaErr = err
		}
	}

	if cascadeErr != nil {
		return cascadeErr
	}
	if mediaErr != nil {
		return fmt.Errorf("%w: 媒体对象释放失败: %v", response.ErrCascadeIncomplete, mediaErr)
	}
	return nil
}

// TogglePublish 发布状态开关，返回切换后的状态
func (s *VideoService) TogglePublish(ctx context.Context, userID, videoID int64) (bool, error) {
	video, err := s.VideoDAO.GetByID(ctx, videoID)
	if err != nil {
		return false, err
	}
	if video == nil {
		return false, response.ErrTargetNotFound
	}
	if video.UserID != userID {
		return false, fmt.Errorf("%w: 只有作者能修改发布状态", response.ErrForbidden)
	}

	next := !video.IsPublished
	if err := s.VideoDAO.UpdateByID(ctx, videoID, map[string]any{"is_published": next}); err != nil {
		return false, err
	}
	return next, nil
}

// GetWatchHistory 观看历史，按最近观看排序
func (s *VideoService) GetWatchHistory(ctx context.Context, userID int64, page, limit int) (*types.WatchHistoryResponse, error) {
	page, limit = pagination.Normalize(page, limit)

	items, total, err := s.HistoryDAO.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]int64, 0, len(items))
	for _, h := range items {
		videoIDs = append(videoIDs, h.VideoID)
	}
	videoMap, err := s.VideoDAO.BatchGetByIDs(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	videos := make([]*models.Video, 0, len(items))
	for _, h := range items {
		if v, ok := videoMap[h.VideoID]; ok {
			videos = append(videos, v)
		}
	}
	listItems, err := s.attachOwners(ctx, videos)
	if err != nil {
		return nil, err
	}
	return &types.WatchHistoryResponse{
		Videos: listItems,
		Meta:   pagination.NewMeta(page, limit, total),
	}, nil
}

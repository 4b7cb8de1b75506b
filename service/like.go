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

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (bool, error)
	GetLikedVideos(ctx context.Context, userID int64) ([]*types.LikedVideo, error)
}

// LikeEdgeStore 点赞边的最小存储契约，*dao.LikeDAO 实现
type LikeEdgeStore interface {
	GetEdge(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	DeleteByID(ctx context.Context, id int64) error
}

// TargetChecker 目标存在性校验，*dao.TargetDAO 实现
type TargetChecker interface {
	Exists(ctx context.Context, kind models.TargetKind, id int64) (bool, error)
}

type LikeService struct {
	EdgeStore LikeEdgeStore
	Targets   TargetChecker
	LikeDAO   *dao.LikeDAO
	VideoDAO  *dao.VideoDAO
	UserDAO   *dao.UserDAO
}

// Toggle 点赞开关：有边删边返回 false，无边建边返回 true
//
// 先读后写本身不原子，靠 likes 表 (user_id, target_kind, target_id)
// 唯一键兜底：并发下重复插入报唯一冲突，按"边已存在"重走一次查找+删除，
// 除此之外不做任何自动重试
func (s *LikeService) Toggle(ctx context.Context, userID int64, kind models.TargetKind, targetID int64) (bool, error) {
	if !kind.Valid() || targetID <= 0 {
		return false, response.ErrInvalidID
	}

	exist, err := s.Targets.Exists(ctx, kind, targetID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.ErrTargetNotFound
	}

	edge, err := s.EdgeStore.GetEdge(ctx, userID, kind, targetID)
	if err != nil {
		return false, err
	}
	if edge != nil {
		// 取消点赞
		if err := s.EdgeStore.DeleteByID(ctx, edge.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &models.Like{
		ID:         snowflake.GenID(),
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
	}
	err = s.EdgeStore.Create(ctx, like)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}

	// 唯一键冲突：同一用户的并发请求先插成功了，按已点赞处理，走删除分支
	log.L.Info("like toggle hit duplicate edge, retrying delete path",
		zap.Int64("user_id", userID),
		zap.String("target_kind", kind.String()),
		zap.Int64("target_id", targetID))

	edge, err = s.EdgeStore.GetEdge(ctx, userID, kind, targetID)
	if err != nil {
		return false, err
	}
	if edge == nil {
		// 对手方又删掉了，等价于本次完成了一次完整的赞/取消往返
		return false, nil
	}
	if err := s.EdgeStore.DeleteByID(ctx, edge.ID); err != nil {
		return false, err
	}
	return false, nil
}

// GetLikedVideos 我点过赞的视频列表，每条附带该视频当前总赞数
func (s *LikeService) GetLikedVideos(ctx context.Context, userID int64) ([]*types.LikedVideo, error) {
	edges, err := s.LikeDAO.ListVideoEdgesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []*types.LikedVideo{}, nil
	}

	videoIDs := make([]int64, 0, len(edges))
	for _, e := range edges {
		videoIDs = append(videoIDs, e.TargetID)
	}

	videoMap, err := s.VideoDAO.BatchGetByIDs(ctx, videoIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.LikeDAO.BatchCountByTargets(ctx, models.TargetVideo, videoIDs)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]int64, 0, len(videoMap))
	for _, v := range videoMap {
		ownerIDs = append(ownerIDs, v.UserID)
	}
	ownerMap, err := s.UserDAO.BatchGetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.LikedVideo, 0, len(edges))
	for _, e := range edges {
		video, ok := videoMap[e.TargetID]
		if !ok {
			// 目标已被删除而级联清理尚未落地，跳过
			continue
		}
		result = append(result, &types.LikedVideo{
			Video:      video,
			Owner:      toUserProfile(ownerMap[video.UserID]),
			TotalLikes: likeCounts[video.ID],
			IsLiked:    true,
		})
	}
	return result, nil
}

// toUserProfile 模型到摘要视图，user 为 nil 时返回零值
func toUserProfile(user *models.User) types.UserProfile {
	if user == nil {
		return types.UserProfile{}
	}
	return types.UserProfile{
		ID:       user.ID,
		UserName: user.UserName,
		FullName: user.FullName,
		Avatar:   user.Avatar,
	}
}

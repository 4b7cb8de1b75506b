package service

import (
	"context"
	"fmt"

	"VideoTube/models"
	"VideoTube/pkg/log"
	"VideoTube/pkg/response"

	"go.uber.org/zap"
)

var _ ICascadeService = (*CascadeService)(nil)

// ICascadeService 级联清理：父实体删除成功之后，清掉仍然指向它的边和子记录
// 关系表没有真正的外键，完整性只能靠这里兜
type ICascadeService interface {
	OnVideoDeleted(ctx context.Context, videoID int64) error
	OnCommentDeleted(ctx context.Context, commentID int64) error
	OnTweetDeleted(ctx context.Context, tweetID int64) error
}

// 级联各步骤的最小存储契约，分别由 *dao.LikeDAO、*dao.CommentDAO、
// *dao.WatchHistoryDAO 实现
type LikeEdgeCleaner interface {
	DeleteByTarget(ctx context.Context, kind models.TargetKind, targetID int64) (int64, error)
	DeleteByTargets(ctx context.Context, kind models.TargetKind, targetIDs []int64) (int64, error)
}

type CommentCleaner interface {
	IDsByTarget(ctx context.Context, kind models.TargetKind, targetID int64) ([]int64, error)
	DeleteByTarget(ctx context.Context, kind models.TargetKind, targetID int64) (int64, error)
}

type HistoryCleaner interface {
	DeleteByVideo(ctx context.Context, videoID int64) (int64, error)
}

type CascadeService struct {
	Likes    LikeEdgeCleaner
	Comments CommentCleaner
	History  HistoryCleaner
}

// OnVideoDeleted 视频删除后的级联：
// 视频上的赞 → 子评论上的赞 → 子评论 → 观看历史。
// 部分步骤失败不回滚——主记录已经没了，残边记日志并报 ErrCascadeIncomplete
func (s *CascadeService) OnVideoDeleted(ctx context.Context, videoID int64) error {
	var failed []string

	if _, err := s.Likes.DeleteByTarget(ctx, models.TargetVideo, videoID); err != nil {
		log.L.Error("cascade: delete video likes failed", zap.Int64("video_id", videoID), zap.Error(err))
		failed = append(failed, "video_likes")
	}

	commentIDs, err := s.Comments.IDsByTarget(ctx, models.TargetVideo, videoID)
	if err != nil {
		log.L.Error("cascade: list video comments failed", zap.Int64("video_id", videoID), zap.Error(err))
		failed = append(failed, "comment_listing")
	} else if len(commentIDs) > 0 {
		if _, err := s.Likes.DeleteByTargets(ctx, models.TargetComment, commentIDs); err != nil {
			log.L.Error("cascade: delete comment likes failed", zap.Int64("video_id", videoID), zap.Error(err))
			failed = append(failed, "comment_likes")
		}
		if _, err := s.Comments.DeleteByTarget(ctx, models.TargetVideo, videoID); err != nil {
			log.L.Error("cascade: delete comments failed", zap.Int64("video_id", videoID), zap.Error(err))
			failed = append(failed, "comments")
		}
	}

	if _, err := s.History.DeleteByVideo(ctx, videoID); err != nil {
		log.L.Error("cascade: delete watch history failed", zap.Int64("video_id", videoID), zap.Error(err))
		failed = append(failed, "watch_history")
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: video %d steps %v", response.ErrCascadeIncomplete, videoID, failed)
	}
	return nil
}

// OnCommentDeleted 评论删除后清掉评论上的赞
func (s *CascadeService) OnCommentDeleted(ctx context.Context, commentID int64) error {
	if _, err := s.Likes.DeleteByTarget(ctx, models.TargetComment, commentID); err != nil {
		log.L.Error("cascade: delete comment likes failed", zap.Int64("comment_id", commentID), zap.Error(err))
		return fmt.Errorf("%w: comment %d", response.ErrCascadeIncomplete, commentID)
	}
	return nil
}

// OnTweetDeleted 推文删除后的级联：推文上的赞、子评论及其赞
func (s *CascadeService) OnTweetDeleted(ctx context.Context, tweetID int64) error {
	var failed []string

	if _, err := s.Likes.DeleteByTarget(ctx, models.TargetTweet, tweetID); err != nil {
		log.L.Error("cascade: delete tweet likes failed", zap.Int64("tweet_id", tweetID), zap.Error(err))
		failed = append(failed, "tweet_likes")
	}

	commentIDs, err := s.Comments.IDsByTarget(ctx, models.TargetTweet, tweetID)
	if err != nil {
		log.L.Error("cascade: list tweet comments failed", zap.Int64("tweet_id", tweetID), zap.Error(err))
		failed = append(failed, "comment_listing")
	} else if len(commentIDs) > 0 {
		if _, err := s.Likes.DeleteByTargets(ctx, models.TargetComment, commentIDs); err != nil {
			log.L.Error("cascade: delete comment likes failed", zap.Int64("tweet_id", tweetID), zap.Error(err))
			failed = append(failed, "comment_likes")
		}
		if _, err := s.Comments.DeleteByTarget(ctx, models.TargetTweet, tweetID); err != nil {
			log.L.Error("cascade: delete comments failed", zap.Int64("tweet_id", tweetID), zap.Error(err))
			failed = append(failed, "comments")
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: tweet %d steps %v", response.ErrCascadeIncomplete, tweetID, failed)
	}
	return nil
}

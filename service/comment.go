package service

import (
	"context"
	"fmt"
	"strings"

	"VideoTube/dao"
	"VideoTube/models"
	"VideoTube/pkg/pagination"
	"VideoTube/pkg/response"
	"VideoTube/pkg/snowflake"
	"VideoTube/types"

	"github.com/sourcegraph/conc/pool"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Add(ctx context.Context, userID int64, kind models.TargetKind, targetID int64, req *types.CreateCommentRequest) (*models.Comment, error)
	Update(ctx context.Context, userID, commentID int64, req *types.UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, userID, commentID int64) error
	ListByTarget(ctx context.Context, kind models.TargetKind, targetID, viewerID int64, page, limit int) (*types.CommentListResponse, error)
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	UserDAO    *dao.UserDAO
	LikeDAO    *dao.LikeDAO
	Targets    TargetChecker
	Cascade    ICascadeService
}

// Add 发表评论，目标只能是视频或推文
func (s *CommentService) Add(ctx context.Context, userID int64, kind models.TargetKind, targetID int64, req *types.CreateCommentRequest) (*models.Comment, error) {
	if kind != models.TargetVideo && kind != models.TargetTweet {
		return nil, response.ErrInvalidID
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: 评论内容不能为空", response.ErrValidation)
	}

	exist, err := s.Targets.Exists(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.ErrTargetNotFound
	}

	comment := &models.Comment{
		ID:         snowflake.GenID(),
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
		Content:    content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update 只有评论作者能改
func (s *CommentService) Update(ctx context.Context, userID, commentID int64, req *types.UpdateCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: 评论内容不能为空", response.ErrValidation)
	}

	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.ErrTargetNotFound
	}
	if comment.UserID != userID {
		return nil, fmt.Errorf("%w: 只有评论作者能编辑评论", response.ErrForbidden)
	}

	if err := s.CommentDAO.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	comment.Content = content
	return comment, nil
}

// Delete 只有评论作者能删；删除成功后级联清掉评论上的赞
func (s *CommentService) Delete(ctx context.Context, userID, commentID int64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.ErrTargetNotFound
	}
	if comment.UserID != userID {
		return fmt.Errorf("%w: 只有评论作者能删除评论", response.ErrForbidden)
	}

	deleted, err := s.CommentDAO.DeleteByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return response.ErrTargetNotFound
	}

	return s.Cascade.OnCommentDeleted(ctx, commentID)
}

// ListByTarget 目标下的评论列表：作者摘要 + 当前用户点赞状态，稳定分页
func (s *CommentService) ListByTarget(ctx context.Context, kind models.TargetKind, targetID, viewerID int64, page, limit int) (*types.CommentListResponse, error) {
	if kind != models.TargetVideo && kind != models.TargetTweet {
		return nil, response.ErrInvalidID
	}

	exist, err := s.Targets.Exists(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.ErrTargetNotFound
	}

	page, limit = pagination.Normalize(page, limit)
	comments, total, err := s.CommentDAO.ListByTarget(ctx, kind, targetID, page, limit)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return &types.CommentListResponse{
			Comments: []*types.CommentView{},
			Meta:     pagination.NewMeta(page, limit, total),
		}, nil
	}

	commentIDs := make([]int64, 0, len(comments))
	userIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
		userIDs = append(userIDs, c.UserID)
	}

	var (
		userMap map[int64]*models.User
		liked   map[int64]bool
	)
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		userMap, err = s.UserDAO.BatchGetByIDs(ctx, userIDs)
		return err
	})
	p.Go(func(ctx context.Context) error {
		if viewerID <= 0 {
			return nil
		}
		var err error
		liked, err = s.LikeDAO.BatchCheckExists(ctx, viewerID, models.TargetComment, commentIDs)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	views := make([]*types.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, &types.CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Owner:     toUserProfile(userMap[c.UserID]),
			IsLiked:   liked[c.ID],
		})
	}
	return &types.CommentListResponse{
		Comments: views,
		Meta:     pagination.NewMeta(page, limit, total),
	}, nil
}

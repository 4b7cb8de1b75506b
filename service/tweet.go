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
)

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	Create(ctx context.Context, userID int64, req *types.CreateTweetRequest) (*models.Tweet, error)
	Update(ctx context.Context, userID, tweetID int64, req *types.UpdateTweetRequest) (*models.Tweet, error)
	Delete(ctx context.Context, userID, tweetID int64) error
	ListByUser(ctx context.Context, ownerID int64, page, limit int) (*types.TweetListResponse, error)
}

type TweetService struct {
	TweetDAO *dao.TweetDAO
	UserDAO  *dao.UserDAO
	Cascade  ICascadeService
}

func (s *TweetService) Create(ctx context.Context, userID int64, req *types.CreateTweetRequest) (*models.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: 推文内容不能为空", response.ErrValidation)
	}

	tweet := &models.Tweet{
		ID:      snowflake.GenID(),
		UserID:  userID,
		Content: content,
	}
	if err := s.TweetDAO.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Update 只有作者能改
func (s *TweetService) Update(ctx context.Context, userID, tweetID int64, req *types.UpdateTweetRequest) (*models.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: 推文内容不能为空", response.ErrValidation)
	}

	tweet, err := s.TweetDAO.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, response.ErrTargetNotFound
	}
	if tweet.UserID != userID {
		return nil, fmt.Errorf("%w: 只有作者能编辑推文", response.ErrForbidden)
	}

	if err := s.TweetDAO.UpdateContent(ctx, tweetID, content); err != nil {
		return nil, err
	}
	tweet.Content = content
	return tweet, nil
}

// Delete 只有作者能删；删除成功后级联清掉推文上的赞和评论
func (s *TweetService) Delete(ctx context.Context, userID, tweetID int64) error {
	tweet, err := s.TweetDAO.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return response.ErrTargetNotFound
	}
	if tweet.UserID != userID {
		return fmt.Errorf("%w: 只有作者能删除推文", response.ErrForbidden)
	}

	deleted, err := s.TweetDAO.DeleteByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if !deleted {
		return response.ErrTargetNotFound
	}

	return s.Cascade.OnTweetDeleted(ctx, tweetID)
}

// ListByUser 某个用户的推文列表，附作者摘要
func (s *TweetService) ListByUser(ctx context.Context, ownerID int64, page, limit int) (*types.TweetListResponse, error) {
	if ownerID <= 0 {
		return nil, response.ErrInvalidID
	}

	owner, err := s.UserDAO.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, response.ErrTargetNotFound
	}

	page, limit = pagination.Normalize(page, limit)
	tweets, total, err := s.TweetDAO.ListByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return nil, err
	}

	profile := toUserProfile(owner)
	views := make([]*types.TweetView, 0, len(tweets))
	for _, t := range tweets {
		views = append(views, &types.TweetView{Tweet: t, Owner: profile})
	}
	return &types.TweetListResponse{
		Tweets: views,
		Meta:   pagination.NewMeta(page, limit, total),
	}, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"VideoTube/config"
	"VideoTube/dao"
	"VideoTube/models"
	"VideoTube/pkg/encrypt"
	"VideoTube/pkg/jwt"
	"VideoTube/pkg/response"
	"VideoTube/pkg/snowflake"
	"VideoTube/types"

	"github.com/sourcegraph/conc/pool"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.UserProfile, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	GetChannelProfile(ctx context.Context, userName string, viewerID int64) (*types.ChannelProfile, error)
}

type UserService struct {
	UserDAO *dao.UserDAO
	SubDAO  *dao.SubscriptionDAO
	Conf    *config.Config
}

// Register 注册新用户，用户名和邮箱都要求唯一
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserProfile, error) {
	if s.UserDAO.IsUserNameExist(ctx, req.UserName) {
		return nil, fmt.Errorf("%w: 用户名已被占用", response.ErrValidation)
	}
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, fmt.Errorf("%w: 邮箱已被注册", response.ErrValidation)
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

// Login 登录成功签发访问令牌
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.GetByUserName(ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	if user == nil || !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, fmt.Errorf("%w: 用户名或密码错误", response.ErrUnauthorized)
	}

	expire := time.Duration(s.Conf.Jwt.ExpiresIn) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Conf.Jwt.Secret), user.ID, user.UserName, "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		AccessToken: token,
		User:        toUserProfile(user),
	}, nil
}

// GetChannelProfile 频道主页：用户档案 + 粉丝数 + 关注数 + 当前用户是否已订阅
func (s *UserService) GetChannelProfile(ctx context.Context, userName string, viewerID int64) (*types.ChannelProfile, error) {
	if userName == "" {
		return nil, response.ErrInvalidID
	}

	user, err := s.UserDAO.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.ErrTargetNotFound
	}

	profile := &types.ChannelProfile{
		UserProfile: toUserProfile(user),
		CoverImage:  user.CoverImage,
	}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		profile.SubscribersCount, err = s.SubDAO.CountByChannel(ctx, user.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		profile.SubscribedTo, err = s.SubDAO.CountBySubscriber(ctx, user.ID)
		return err
	})
	if viewerID > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			profile.IsSubscribed, err = s.SubDAO.ExistsEdge(ctx, viewerID, user.ID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

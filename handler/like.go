package handler

import (
	"VideoTube/config"
	"VideoTube/middleware"
	"VideoTube/models"
	"VideoTube/pkg/context"
	"VideoTube/pkg/response"
	"VideoTube/service"
	"VideoTube/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	g := r.Group("/v1/likes", authorize)
	g.POST("/toggle/video/:video_id", context.Wrap(l.ToggleVideoLike))
	g.POST("/toggle/comment/:comment_id", context.Wrap(l.ToggleCommentLike))
	g.POST("/toggle/tweet/:tweet_id", context.Wrap(l.ToggleTweetLike))
	g.GET("/videos", context.Wrap(l.GetLikedVideos))
}

func (l *Like) ToggleVideoLike(c *gin.Context) error {
	return l.toggle(c, models.TargetVideo, "video_id")
}

func (l *Like) ToggleCommentLike(c *gin.Context) error {
	return l.toggle(c, models.TargetComment, "comment_id")
}

func (l *Like) ToggleTweetLike(c *gin.Context) error {
	return l.toggle(c, models.TargetTweet, "tweet_id")
}

// toggle 点赞开关，响应里回切换后的状态
func (l *Like) toggle(c *gin.Context, kind models.TargetKind, param string) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	targetID, err := parseIDParam(c, param)
	if err != nil {
		return err
	}

	liked, err := l.LikeService.Toggle(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		return err
	}
	response.Success(c, types.ToggleLikeResponse{IsLiked: liked})
	return nil
}

// GetLikedVideos 我点过赞的视频
func (l *Like) GetLikedVideos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}

	videos, err := l.LikeService.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"videos": videos})
	return nil
}

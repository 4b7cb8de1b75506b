package handler

import (
	"net/http"

	"VideoTube/config"
	"VideoTube/middleware"
	"VideoTube/models"
	"VideoTube/pkg/context"
	"VideoTube/pkg/response"
	"VideoTube/service"
	"VideoTube/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)
	g := r.Group("/v1/comments")
	g.GET("/video/:video_id", optional, context.Wrap(h.ListVideoComments))
	g.GET("/tweet/:tweet_id", optional, context.Wrap(h.ListTweetComments))
	g.POST("/video/:video_id", authorize, context.Wrap(h.AddVideoComment))
	g.POST("/tweet/:tweet_id", authorize, context.Wrap(h.AddTweetComment))
	g.PATCH("/:comment_id", authorize, context.Wrap(h.Update))
	g.DELETE("/:comment_id", authorize, context.Wrap(h.Delete))
}

func (h *Comment) ListVideoComments(c *gin.Context) error {
	return h.list(c, models.TargetVideo, "video_id")
}

func (h *Comment) ListTweetComments(c *gin.Context) error {
	return h.list(c, models.TargetTweet, "tweet_id")
}

// list 目标下的评论列表，登录用户带点赞状态
func (h *Comment) list(c *gin.Context, kind models.TargetKind, param string) error {
	targetID, err := parseIDParam(c, param)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	resp, err := h.CommentService.ListByTarget(c.Request.Context(), kind, targetID, viewerID(c), page, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Comment) AddVideoComment(c *gin.Context) error {
	return h.add(c, models.TargetVideo, "video_id")
}

func (h *Comment) AddTweetComment(c *gin.Context) error {
	return h.add(c, models.TargetTweet, "tweet_id")
}

func (h *Comment) add(c *gin.Context, kind models.TargetKind, param string) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	targetID, err := parseIDParam(c, param)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.CommentService.Add(c.Request.Context(), userID, kind, targetID, &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, comment, "评论成功")
	return nil
}

func (h *Comment) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.CommentService.Update(c.Request.Context(), userID, commentID, &req)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.SuccessMsg(c, nil, "删除成功")
	return nil
}

package handler

import (
	"net/http"

	"VideoTube/config"
	"VideoTube/middleware"
	"VideoTube/pkg/context"
	"VideoTube/pkg/response"
	"VideoTube/service"
	"VideoTube/types"

	"github.com/gin-gonic/gin"
)

type Video struct {
	Config       *config.Config
	VideoService service.IVideoService
}

func (v *Video) RegisterRouter(r gin.IRouter) {
	secret := []byte(v.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	g := r.Group("/v1/videos")
	g.GET("", context.Wrap(v.List))
	g.GET("/history", authorize, context.Wrap(v.GetWatchHistory))
	g.GET("/:video_id", middleware.OptionalAuth(secret), context.Wrap(v.GetByID))
	g.POST("", authorize, context.Wrap(v.Publish))
	g.PATCH("/toggle-publish/:video_id", authorize, context.Wrap(v.TogglePublish))
	g.PATCH("/:video_id", authorize, context.Wrap(v.Update))
	g.DELETE("/:video_id", authorize, context.Wrap(v.Delete))
}

// List 已发布视频列表，支持搜索、按作者过滤和排序
func (v *Video) List(c *gin.Context) error {
	var req types.ListVideosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := v.VideoService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// GetByID 视频详情，登录用户额外拿到点赞/订阅状态
func (v *Video) GetByID(c *gin.Context) error {
	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return err
	}

	detail, err := v.VideoService.GetVideoByID(c.Request.Context(), videoID, viewerID(c))
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// Publish 发布视频，multipart：videoFile + thumbnail + 表单字段
func (v *Video) Publish(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}

	var req types.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少视频文件")
	}
	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少封面")
	}

	video, err := v.VideoService.Publish(c.Request.Context(), userID, &req, videoFile, thumbnail)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, video, "发布成功")
	return nil
}

// Update 修改标题/描述
func (v *Video) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return err
	}

	var req types.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	video, err := v.VideoService.Update(c.Request.Context(), userID, videoID, &req)
	if err != nil {
		return err
	}
	response.Success(c, video)
	return nil
}

// Delete 删除视频及其关联数据
func (v *Video) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return err
	}

	if err := v.VideoService.Delete(c.Request.Context(), userID, videoID); err != nil {
		return err
	}
	response.SuccessMsg(c, nil, "删除成功")
	return nil
}

// GetWatchHistory 我的观看历史
func (v *Video) GetWatchHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}

	page, limit := pageParams(c)
	resp, err := v.VideoService.GetWatchHistory(c.Request.Context(), userID, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// TogglePublish 发布状态开关
func (v *Video) TogglePublish(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	videoID, err := parseIDParam(c, "video_id")
	if err != nil {
		return err
	}

	published, err := v.VideoService.TogglePublish(c.Request.Context(), userID, videoID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"is_published": published})
	return nil
}

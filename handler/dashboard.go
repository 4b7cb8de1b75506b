package handler

import (
	"VideoTube/config"
	"VideoTube/middleware"
	"VideoTube/pkg/context"
	"VideoTube/pkg/response"
	"VideoTube/service"

	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	Config           *config.Config
	DashboardService service.IDashboardService
}

func (d *Dashboard) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(d.Config.Jwt.Secret))
	g := r.Group("/v1/dashboard", authorize)
	g.GET("/stats", context.Wrap(d.GetStats))
	g.GET("/videos", context.Wrap(d.GetVideos))
}

// GetStats 当前用户的频道统计
func (d *Dashboard) GetStats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}

	stats, err := d.DashboardService.GetChannelStats(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

// GetVideos 当前用户的视频列表，含未发布的
func (d *Dashboard) GetVideos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}

	page, limit := pageParams(c)
	videos, meta, err := d.DashboardService.GetChannelVideos(c.Request.Context(), userID, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"videos": videos, "meta": meta})
	return nil
}

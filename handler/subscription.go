package handler

import (
	"VideoTube/config"
	"VideoTube/middleware"
	"VideoTube/pkg/context"
	"VideoTube/pkg/response"
	"VideoTube/service"
	"VideoTube/types"

	"github.com/gin-gonic/gin"
)

type Subscription struct {
	Config              *config.Config
	SubscriptionService service.ISubscriptionService
}

func (s *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	g := r.Group("/v1/subscriptions", authorize)
	g.POST("/channel/:channel_id", context.Wrap(s.Toggle))
	g.GET("/channel/:channel_id/subscribers", context.Wrap(s.GetChannelSubscribers))
	g.GET("/user/:subscriber_id/channels", context.Wrap(s.GetSubscribedChannels))
}

// Toggle 订阅开关，响应里回切换后的状态
func (s *Subscription) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	channelID, err := parseIDParam(c, "channel_id")
	if err != nil {
		return err
	}

	subscribed, err := s.SubscriptionService.Toggle(c.Request.Context(), userID, channelID)
	if err != nil {
		return err
	}
	response.Success(c, types.ToggleSubscriptionResponse{Subscribed: subscribed})
	return nil
}

// GetChannelSubscribers 频道的订阅者列表
func (s *Subscription) GetChannelSubscribers(c *gin.Context) error {
	channelID, err := parseIDParam(c, "channel_id")
	if err != nil {
		return err
	}

	subscribers, err := s.SubscriptionService.GetChannelSubscribers(c.Request.Context(), channelID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"subscribers": subscribers})
	return nil
}

// GetSubscribedChannels 某个用户订阅的频道列表
func (s *Subscription) GetSubscribedChannels(c *gin.Context) error {
	subscriberID, err := parseIDParam(c, "subscriber_id")
	if err != nil {
		return err
	}

	channels, err := s.SubscriptionService.GetSubscribedChannels(c.Request.Context(), subscriberID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"channels": channels})
	return nil
}

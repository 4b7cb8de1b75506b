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

type Tweet struct {
	Config       *config.Config
	TweetService service.ITweetService
}

func (t *Tweet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(t.Config.Jwt.Secret))
	g := r.Group("/v1/tweets")
	g.POST("", authorize, context.Wrap(t.Create))
	g.GET("/user/:user_id", context.Wrap(t.ListByUser))
	g.PATCH("/:tweet_id", authorize, context.Wrap(t.Update))
	g.DELETE("/:tweet_id", authorize, context.Wrap(t.Delete))
}

func (t *Tweet) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}

	var req types.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	tweet, err := t.TweetService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, tweet, "发布成功")
	return nil
}

// ListByUser 某个用户的推文
func (t *Tweet) ListByUser(c *gin.Context) error {
	ownerID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	resp, err := t.TweetService.ListByUser(c.Request.Context(), ownerID, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (t *Tweet) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	tweetID, err := parseIDParam(c, "tweet_id")
	if err != nil {
		return err
	}

	var req types.UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	tweet, err := t.TweetService.Update(c.Request.Context(), userID, tweetID, &req)
	if err != nil {
		return err
	}
	response.Success(c, tweet)
	return nil
}

func (t *Tweet) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized
	}
	tweetID, err := parseIDParam(c, "tweet_id")
	if err != nil {
		return err
	}

	if err := t.TweetService.Delete(c.Request.Context(), userID, tweetID); err != nil {
		return err
	}
	response.SuccessMsg(c, nil, "删除成功")
	return nil
}

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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	g := r.Group("/v1/users")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/channel/:user_name", middleware.OptionalAuth(secret), context.Wrap(u.GetChannelProfile))
}

// Register 注册
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	profile, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, profile, "注册成功")
	return nil
}

// Login 登录换令牌
func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// GetChannelProfile 频道主页，登录用户额外拿到订阅状态
func (u *User) GetChannelProfile(c *gin.Context) error {
	userName := c.Param("user_name")

	profile, err := u.UserService.GetChannelProfile(c.Request.Context(), userName, viewerID(c))
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

package middleware

import (
	"net/http"
	"strings"

	"VideoTube/pkg/context"
	"VideoTube/pkg/jwt"
	"VideoTube/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录：校验 Bearer 访问令牌，把用户身份写进请求上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, secret)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUserName, claims.UserName)
		c.Next()
	}
}

// OptionalAuth 可选登录：带合法令牌就注入身份，没带或带错按匿名放行。
// 详情页、评论列表这类"登录了多给两个字段"的读接口用它
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearer(c, secret); err == nil {
			c.Set(context.CtxUserID, claims.UserID)
			c.Set(context.CtxUserName, claims.UserName)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, response.NewError(http.StatusUnauthorized, "缺少 Authorization")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, response.NewError(http.StatusUnauthorized, "Authorization 格式错误")
	}

	return jwt.ParseToken(secret, "access", parts[1])
}

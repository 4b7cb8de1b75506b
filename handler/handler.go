package handler

import (
	"net/http"
	"strconv"

	"VideoTube/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseIDParam 取路径里的雪花 ID，非法一律报 400
func parseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}

// pageParams 读分页参数，越界交给 pagination.Normalize 兜底
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// viewerID 可选登录的接口里拿当前用户，匿名返回 0
func viewerID(c *gin.Context) int64 {
	v, ok := c.Get("user_id")
	if !ok {
		return 0
	}
	uid, _ := v.(int64)
	return uid
}

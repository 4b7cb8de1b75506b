package response

import (
	"errors"
	"net/http"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误类别，service 层统一返回这些哨兵（必要时用 %w 包装），
// 由 context.Wrap 映射成响应码
var (
	ErrInvalidID         = NewError(http.StatusBadRequest, "参数 ID 非法")
	ErrValidation        = NewError(http.StatusBadRequest, "参数校验失败")
	ErrUnauthorized      = NewError(http.StatusUnauthorized, "未登录")
	ErrForbidden         = NewError(http.StatusForbidden, "没有操作权限")
	ErrTargetNotFound    = NewError(http.StatusNotFound, "目标资源不存在")
	ErrUpstream          = NewError(http.StatusBadGateway, "上游存储服务异常")
	ErrCascadeIncomplete = NewError(http.StatusInternalServerError, "关联数据清理未完成")
)

// IsBiz 判断 err 是否为某个业务错误哨兵
func IsBiz(err error, target *BizError) bool {
	var be *BizError
	if !errors.As(err, &be) {
		return false
	}
	return be == target
}

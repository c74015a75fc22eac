package cms_sdk

/* HTTP handlers are split into:
- handler_auth.go         登录/登出/一次性初始化
- handler_content.go      公告与新闻共用的 CRUD 逻辑
- handler_bulletin.go     公告路由入口
- handler_news.go         新闻路由入口
- handler_dashboard.go    仪表盘
- handler_notification.go 表单通知
- handler_meta.go         更新日志 / 维护窗口
- handler_webhook.go      Google 表单 webhook
- handler_pages.go        公开页数据
*/

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/middleware"
	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

// currentUserID 从 gin.Context 取当前管理员 id（鉴权中间件写入）。
func currentUserID(ctx *gin.Context) (uint64, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := v.(uint64)
	return uid, ok
}

// mustCurrentUserID 取不到就直接写 401 并返回 false。
func mustCurrentUserID(ctx *gin.Context) (uint64, bool) {
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "user_id not found in context"))
	}
	return uid, ok
}

// codeForError service 错误分类 -> 业务状态码。
func codeForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return response.CodeParamError
	case errors.Is(err, service.ErrRecordNotFound):
		return response.CodeNotFound
	case errors.Is(err, service.ErrUploadFailed):
		return response.CodeUploadFailed
	case errors.Is(err, service.ErrDeleteFailed):
		return response.CodeDeleteFailed
	case errors.Is(err, service.ErrLoginFailed):
		return response.CodeLoginFailed
	case errors.Is(err, service.ErrSetupCompleted):
		return response.CodeSetupDone
	default:
		return response.CodeInternalError
	}
}

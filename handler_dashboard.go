package cms_sdk

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

// GinHandleDashboard 仪表盘：内容计数、更新日志、维护窗口、未读通知。
// @Summary 仪表盘
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (c *CMSEngine) GinHandleDashboard(ctx *gin.Context) {
	bulletinCount, err := c.BulletinService.Count()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	newsCount, err := c.NewsService.Count()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	patchNotes, err := c.PatchNoteService.List()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	maintenance, err := c.MaintenanceService.List()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	unread, err := c.NotificationService.ListUnread()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"bulletin_count":       bulletinCount,
		"news_count":           newsCount,
		"patch_notes":          patchNotes,
		"system_maintenance":   maintenance,
		"unread_notifications": unread,
		"unread_count":         len(unread),
		"server_time":          service.ManilaNow().Format("January 02, 2006 03:04 PM"),
	}))
}

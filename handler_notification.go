package cms_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/cons"
	"github.com/lguportal/cms-sdk/response"
)

// -------------------- 表单通知（Notification）相关接口 --------------------

// GinHandleListUnreadNotifications 未读通知（最新在前）
// @Summary 未读通知
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items + data.count"
// @Security BearerAuth
// @Router /admin/notifications/unread [get]
func (c *CMSEngine) GinHandleListUnreadNotifications(ctx *gin.Context) {
	items, err := c.NotificationService.ListUnread()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"items": items,
		"count": len(items),
	}))
}

// GinHandleUnreadNotificationCount 未读总数（全局角标轮询）
// @Summary 未读总数
// @Tags 通知
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.count"
// @Security BearerAuth
// @Router /admin/notifications/unread/count [get]
func (c *CMSEngine) GinHandleUnreadNotificationCount(ctx *gin.Context) {
	count, err := c.NotificationService.UnreadCount()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"count": count}))
}

// GinHandleMarkNotificationRead 标记已读。幂等：重复标记返回成功。
// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Param id path uint64 true "通知ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/notifications/{id}/read [post]
func (c *CMSEngine) GinHandleMarkNotificationRead(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return
	}

	if err := c.NotificationService.MarkRead(id); err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil, "Notification marked as read."))
}

// listFormRequests 某类表单的提交列表（?limit/?offset）。
func (c *CMSEngine) listFormRequests(ctx *gin.Context, formType string) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	items, err := c.NotificationService.ListByFormType(formType, limit, offset)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"form_type": formType,
		"items":     items,
	}))
}

// GinHandleCertificateRequests 证明申请列表
// @Summary 证明申请列表
// @Tags 通知
// @Produce json
// @Param limit query int false "条数(默认50,最大200)"
// @Param offset query int false "偏移"
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /admin/requests/certificates [get]
func (c *CMSEngine) GinHandleCertificateRequests(ctx *gin.Context) {
	c.listFormRequests(ctx, cons.FormTypeBrgyCertificate)
}

// GinHandleBusinessPermitRequests 营业许可申请列表
// @Summary 营业许可申请列表
// @Tags 通知
// @Produce json
// @Param limit query int false "条数(默认50,最大200)"
// @Param offset query int false "偏移"
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /admin/requests/business-permits [get]
func (c *CMSEngine) GinHandleBusinessPermitRequests(ctx *gin.Context) {
	c.listFormRequests(ctx, cons.FormTypeBusinessPermit)
}

// GinHandleReportsAndConcerns 投诉与反映列表
// @Summary 投诉与反映列表
// @Tags 通知
// @Produce json
// @Param limit query int false "条数(默认50,最大200)"
// @Param offset query int false "偏移"
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /admin/requests/reports [get]
func (c *CMSEngine) GinHandleReportsAndConcerns(ctx *gin.Context) {
	c.listFormRequests(ctx, cons.FormTypeReportConcern)
}

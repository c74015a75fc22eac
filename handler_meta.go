package cms_sdk

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/response"
)

// -------------------- 更新日志 / 维护窗口 JSON 接口 --------------------

// GinHandleListPatchNotes 全部更新日志（按日期倒序）
// @Summary 更新日志列表
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /api/patch-notes [get]
func (c *CMSEngine) GinHandleListPatchNotes(ctx *gin.Context) {
	items, err := c.PatchNoteService.List()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"items": items}))
}

// GinHandleLatestPatchNote 最近一条更新日志；没有任何日志时 data 为 null。
// @Summary 最近更新日志
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response{data=models.PatchNote}
// @Security BearerAuth
// @Router /api/patch-notes/latest [get]
func (c *CMSEngine) GinHandleLatestPatchNote(ctx *gin.Context) {
	n, err := c.PatchNoteService.Latest()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(n))
}

// GinHandleListMaintenance 全部维护窗口（按开始时间倒序）
// @Summary 维护窗口列表
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /api/system-maintenance [get]
func (c *CMSEngine) GinHandleListMaintenance(ctx *gin.Context) {
	items, err := c.MaintenanceService.List()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"items": items}))
}

// GinHandleLatestMaintenance 当前生效的维护窗口，没有则取最近的未来窗口；
// 都没有时 data 为 null。
// @Summary 当前/即将维护窗口
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response{data=models.SystemMaintenance}
// @Security BearerAuth
// @Router /api/system-maintenance/latest [get]
func (c *CMSEngine) GinHandleLatestMaintenance(ctx *gin.Context) {
	m, err := c.MaintenanceService.LatestRelevant(time.Now().UTC())
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(m))
}

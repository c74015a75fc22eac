package cms_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

// -------------------- 公开页数据（免登录） --------------------

// GinHandlePublicHome 首页数据：最新 8 条启用公告 + 8 条启用新闻。
// 页面渲染归宿主应用，这里只出数据。
// @Summary 首页数据
// @Tags 公开
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.bulletins + data.news"
// @Router /home [get]
func (c *CMSEngine) GinHandlePublicHome(ctx *gin.Context) {
	bulletins, err := c.BulletinService.ListActive(8)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	news, err := c.NewsService.ListActive(8)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"bulletins":   bulletins,
		"news":        news,
		"server_time": service.ManilaNow().Format("January 02, 2006 03:04 PM"),
	}))
}

// GinHandlePublicBulletins 公开公告列表（仅启用，?limit）
// @Summary 公开公告列表
// @Tags 公开
// @Produce json
// @Param limit query int false "条数(默认8)"
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Router /bulletins [get]
func (c *CMSEngine) GinHandlePublicBulletins(ctx *gin.Context) {
	c.listActiveContent(ctx, c.BulletinService)
}

// GinHandlePublicNews 公开新闻列表（仅启用，?limit）
// @Summary 公开新闻列表
// @Tags 公开
// @Produce json
// @Param limit query int false "条数(默认8)"
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Router /news [get]
func (c *CMSEngine) GinHandlePublicNews(ctx *gin.Context) {
	c.listActiveContent(ctx, c.NewsService)
}

func (c *CMSEngine) listActiveContent(ctx *gin.Context, svc *service.ContentService) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "8"))
	items, err := svc.ListActive(limit)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"items": items}))
}

package cms_sdk

import (
	"github.com/gin-gonic/gin"
)

// -------------------- 新闻（News & Events）相关接口 --------------------

// GinHandleListNews 新闻列表（后台，含停用）
// @Summary 新闻列表
// @Tags 新闻
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /admin/news [get]
func (c *CMSEngine) GinHandleListNews(ctx *gin.Context) {
	c.listContent(ctx, c.NewsService)
}

// GinHandleGetNews 新闻详情
// @Summary 新闻详情
// @Tags 新闻
// @Produce json
// @Param id path uint64 true "新闻ID"
// @Success 200 {object} response.Response{data=models.ContentPost}
// @Security BearerAuth
// @Router /admin/news/{id} [get]
func (c *CMSEngine) GinHandleGetNews(ctx *gin.Context) {
	c.getContent(ctx, c.NewsService)
}

// GinHandleCreateNews 创建新闻（multipart 表单，可带 image 文件）
// @Summary 创建新闻
// @Tags 新闻
// @Accept mpfd
// @Produce json
// @Param title formData string true "标题"
// @Param content formData string true "正文"
// @Param is_active formData string false "启用（有值即启用）"
// @Param image formData file false "配图"
// @Success 200 {object} response.Response{data=models.ContentPost} "创建成功"
// @Security BearerAuth
// @Router /admin/news [post]
func (c *CMSEngine) GinHandleCreateNews(ctx *gin.Context) {
	c.createContent(ctx, c.NewsService, "News item created successfully!")
}

// GinHandleUpdateNews 编辑新闻。图片意图与公告一致。
// @Summary 编辑新闻
// @Tags 新闻
// @Accept mpfd
// @Produce json
// @Param id path uint64 true "新闻ID"
// @Param title formData string true "标题"
// @Param content formData string true "正文"
// @Param is_active formData string false "启用（有值即启用）"
// @Param image formData file false "新配图"
// @Param remove_image formData string false "删除配图（须为 true）"
// @Success 200 {object} response.Response{data=models.ContentPost} "更新成功"
// @Security BearerAuth
// @Router /admin/news/{id} [post]
func (c *CMSEngine) GinHandleUpdateNews(ctx *gin.Context) {
	c.updateContent(ctx, c.NewsService, "News & Events updated successfully!")
}

// GinHandleDeleteNews 删除新闻（配图尽力删除）
// @Summary 删除新闻
// @Tags 新闻
// @Produce json
// @Param id path uint64 true "新闻ID"
// @Success 200 {object} response.Response "删除成功"
// @Security BearerAuth
// @Router /admin/news/{id} [delete]
func (c *CMSEngine) GinHandleDeleteNews(ctx *gin.Context) {
	c.deleteContent(ctx, c.NewsService, "News item deleted successfully!")
}

package cms_sdk

import (
	"github.com/gin-gonic/gin"
)

// -------------------- 公告（Bulletin）相关接口 --------------------

// GinHandleListBulletins 公告列表（后台，含停用）
// @Summary 公告列表
// @Tags 公告
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.items"
// @Security BearerAuth
// @Router /admin/bulletins [get]
func (c *CMSEngine) GinHandleListBulletins(ctx *gin.Context) {
	c.listContent(ctx, c.BulletinService)
}

// GinHandleGetBulletin 公告详情
// @Summary 公告详情
// @Tags 公告
// @Produce json
// @Param id path uint64 true "公告ID"
// @Success 200 {object} response.Response{data=models.ContentPost}
// @Security BearerAuth
// @Router /admin/bulletins/{id} [get]
func (c *CMSEngine) GinHandleGetBulletin(ctx *gin.Context) {
	c.getContent(ctx, c.BulletinService)
}

// GinHandleCreateBulletin 创建公告（multipart 表单，可带 image 文件）
// @Summary 创建公告
// @Tags 公告
// @Accept mpfd
// @Produce json
// @Param title formData string true "标题"
// @Param content formData string true "正文"
// @Param is_active formData string false "启用（有值即启用）"
// @Param image formData file false "配图"
// @Success 200 {object} response.Response{data=models.ContentPost} "创建成功"
// @Security BearerAuth
// @Router /admin/bulletins [post]
func (c *CMSEngine) GinHandleCreateBulletin(ctx *gin.Context) {
	c.createContent(ctx, c.BulletinService, "Bulletin created successfully!")
}

// GinHandleUpdateBulletin 编辑公告。图片意图三选一：
// remove_image=true 删图；带 image 文件换图（先删旧图再传）；都没有保持原图。
// @Summary 编辑公告
// @Tags 公告
// @Accept mpfd
// @Produce json
// @Param id path uint64 true "公告ID"
// @Param title formData string true "标题"
// @Param content formData string true "正文"
// @Param is_active formData string false "启用（有值即启用）"
// @Param image formData file false "新配图"
// @Param remove_image formData string false "删除配图（须为 true）"
// @Success 200 {object} response.Response{data=models.ContentPost} "更新成功"
// @Security BearerAuth
// @Router /admin/bulletins/{id} [post]
func (c *CMSEngine) GinHandleUpdateBulletin(ctx *gin.Context) {
	c.updateContent(ctx, c.BulletinService, "Bulletin updated successfully!")
}

// GinHandleDeleteBulletin 删除公告（配图尽力删除）
// @Summary 删除公告
// @Tags 公告
// @Produce json
// @Param id path uint64 true "公告ID"
// @Success 200 {object} response.Response "删除成功"
// @Security BearerAuth
// @Router /admin/bulletins/{id} [delete]
func (c *CMSEngine) GinHandleDeleteBulletin(ctx *gin.Context) {
	c.deleteContent(ctx, c.BulletinService, "Bulletin deleted successfully!")
}

package cms_sdk

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

// 公告和新闻结构完全一致，CRUD 逻辑在这里写一份，
// handler_bulletin.go / handler_news.go 只是带各自路由注解的入口。

// parseContentForm 解析 multipart 表单：title / content / is_active /
// image（文件）/ remove_image。is_active 按“有值即启用”处理（checkbox），
// remove_image 必须显式为 "true"。
func parseContentForm(ctx *gin.Context) (service.ContentInput, error) {
	in := service.ContentInput{
		Title:       ctx.PostForm("title"),
		Content:     ctx.PostForm("content"),
		IsActive:    ctx.PostForm("is_active") != "",
		RemoveImage: ctx.PostForm("remove_image") == "true",
	}

	fh, err := ctx.FormFile("image")
	if err != nil || fh == nil || fh.Filename == "" {
		// 没带文件不是错误
		return in, nil
	}

	f, err := fh.Open()
	if err != nil {
		return in, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return in, err
	}

	in.Image = &service.ImageUpload{
		Filename:    fh.Filename,
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return in, nil
}

func parseIDParam(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return 0, false
	}
	return id, true
}

func (c *CMSEngine) listContent(ctx *gin.Context, svc *service.ContentService) {
	items, err := svc.List()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"items": items}))
}

func (c *CMSEngine) getContent(ctx *gin.Context, svc *service.ContentService) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	item, err := svc.Get(id)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

func (c *CMSEngine) createContent(ctx *gin.Context, svc *service.ContentService, okMsg string) {
	uid, ok := mustCurrentUserID(ctx)
	if !ok {
		return
	}

	in, err := parseContentForm(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	item, err := svc.Create(ctx.Request.Context(), uid, in)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item, okMsg))
}

func (c *CMSEngine) updateContent(ctx *gin.Context, svc *service.ContentService, okMsg string) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	in, err := parseContentForm(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	item, err := svc.Update(ctx.Request.Context(), id, in)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item, okMsg))
}

func (c *CMSEngine) deleteContent(ctx *gin.Context, svc *service.ContentService, okMsg string) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := svc.Delete(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil, okMsg))
}

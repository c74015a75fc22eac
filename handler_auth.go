package cms_sdk

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/middleware"
	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

// -------------------- 后台账号（Auth）相关接口 --------------------

// GinHandleLogin 管理员登录
// @Summary 管理员登录
// @Tags 账号
// @Accept json
// @Produce json
// @Param req body service.LoginReq true "登录信息"
// @Success 200 {object} response.Response{data=service.LoginResp} "登录成功"
// @Router /auth/login [post]
func (c *CMSEngine) GinHandleLogin(ctx *gin.Context) {
	var req service.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	resp, err := c.UserService.Login(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(resp, "Login successful!"))
}

// GinHandleLogout 登出（注销当前 token）
// @Summary 登出
// @Tags 账号
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /auth/logout [post]
func (c *CMSEngine) GinHandleLogout(ctx *gin.Context) {
	token, _ := ctx.Get(middleware.ContextTokenKey)
	t, _ := token.(string)

	if err := c.AuthService.RevokeToken(ctx.Request.Context(), t); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil, "You have been logged out"))
}

// GinHandleCurrentUser 当前登录的管理员信息
// @Summary 当前管理员
// @Tags 账号
// @Produce json
// @Success 200 {object} response.Response{data=service.UserDTO}
// @Security BearerAuth
// @Router /auth/me [get]
func (c *CMSEngine) GinHandleCurrentUser(ctx *gin.Context) {
	uid, ok := mustCurrentUserID(ctx)
	if !ok {
		return
	}

	u, err := c.UserService.GetUser(uid)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(u))
}

// GinHandleSetupStatus /setup 是否仍可用
// @Summary 初始化状态
// @Tags 账号
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}} "data.completed"
// @Router /setup [get]
func (c *CMSEngine) GinHandleSetupStatus(ctx *gin.Context) {
	done, err := c.UserService.SetupCompleted()
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"completed": done}))
}

// GinHandleSetup 一次性初始化管理员。库里已有任何用户行后永久自禁用。
// @Summary 一次性初始化
// @Tags 账号
// @Accept json
// @Produce json
// @Param req body service.SetupReq true "初始管理员"
// @Success 200 {object} response.Response "初始化完成"
// @Router /setup [post]
func (c *CMSEngine) GinHandleSetup(ctx *gin.Context) {
	var req service.SetupReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	if err := c.UserService.SetupInitialAdmin(ctx.Request.Context(), req); err != nil {
		ctx.JSON(http.StatusOK, response.Error(codeForError(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil, "Initial setup completed. You can now log in."))
}

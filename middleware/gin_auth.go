package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

const (
	// ContextUserIDKey gin context 里保存当前管理员 id 的 key
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "token"
)

/*
	GinAuthMiddleware 后台鉴权中间件：

- 优先从 Authorization: Bearer <token> 读取
- 如果没有，再从 query 参数读取（token=xxx）
- 校验 token -> userID（Redis）成功后，把当前管理员写入 gin.Context

当前登录人是请求作用域状态，handler 通过 ctx.Get(ContextUserIDKey) 取，
不存在任何进程级的 current user 全局量。

使用：admin.Use(middleware.GinAuthMiddleware(authService))
*/
func GinAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code: response.CodeInternalError,
				Msg:  "auth service is nil",
			})
			return
		}

		// 1) header bearer
		token := ""
		ah := strings.TrimSpace(c.GetHeader("Authorization"))
		if ah != "" {
			parts := strings.SplitN(ah, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}

		// 2) query fallback
		if token == "" {
			token = strings.TrimSpace(c.Query("token"))
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeTokenInvalid,
				Msg:  "missing token",
			})
			return
		}

		uid, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeTokenInvalid,
				Msg:  err.Error(),
			})
			return
		}

		c.Set(ContextUserIDKey, uid)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

package cms_sdk

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lguportal/cms-sdk/response"
	"github.com/lguportal/cms-sdk/service"
)

// WebhookPayload Google Apps Script 转发的表单提交。
// secret_key 在 JSON 里而不是 header，保持与脚本侧约定一致。
type WebhookPayload struct {
	SecretKey           string          `json:"secret_key"`
	FormType            string          `json:"form_type"`
	SubmissionTimestamp string          `json:"submission_timestamp"`
	Data                json.RawMessage `json:"data"`
}

// GinHandleGoogleFormWebhook 表单 webhook 入口（免登录，共享密钥保护）。
// 这一层用 HTTP 状态码说话：403 密钥不对、400 载荷不合法、500 落库失败、
// 201 落库成功。时间戳解析失败不拒绝，见 NotificationService.Ingest。
// @Summary Google 表单 webhook
// @Tags 通知
// @Accept json
// @Produce json
// @Param payload body WebhookPayload true "表单提交"
// @Success 201 {object} response.Response{data=map[string]interface{}} "data.id"
// @Failure 400 {object} response.Response "载荷不合法"
// @Failure 403 {object} response.Response "密钥不匹配"
// @Router /api/notifications/google-form [post]
func (c *CMSEngine) GinHandleGoogleFormWebhook(ctx *gin.Context) {
	expected := c.config.WebhookSecret
	if expected == "" {
		log.Printf("webhook: shared secret is not configured")
		ctx.JSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, "server configuration error"))
		return
	}

	var payload WebhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "empty or malformed payload"))
		return
	}

	// 空载荷（{} 这种语法合法但什么都没有的 body）在密钥校验之前拒绝
	if payload.SecretKey == "" && payload.FormType == "" && payload.SubmissionTimestamp == "" && len(payload.Data) == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "empty payload"))
		return
	}

	if subtle.ConstantTimeCompare([]byte(payload.SecretKey), []byte(expected)) != 1 {
		log.Printf("webhook: invalid secret key for form_type %q", payload.FormType)
		ctx.JSON(http.StatusForbidden, response.Error(response.CodeTokenInvalid, "unauthorized"))
		return
	}

	n, err := c.NotificationService.Ingest(service.IngestInput{
		FormType:            payload.FormType,
		Data:                payload.Data,
		SubmissionTimestamp: payload.SubmissionTimestamp,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
			return
		}
		log.Printf("webhook: failed to store notification: %v", err)
		ctx.JSON(http.StatusInternalServerError, response.Error(response.CodeInternalError, "failed to store notification"))
		return
	}

	ctx.JSON(http.StatusCreated, response.Success(map[string]any{"id": n.ID}, "Notification received and stored successfully"))
}

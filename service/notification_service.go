package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/lguportal/cms-sdk/models"
)

// NotificationService 表单提交通知：webhook 落库 + 尽力 WS 推送 + 后台拉取。
// 约定：先落库再推送，推送失败不影响落库结果。
type NotificationService struct {
	*Service
	dao *models.NotificationDAO
}

func NewNotificationService(s *Service) *NotificationService {
	return &NotificationService{Service: s, dao: models.NewNotificationDAO(s.DB)}
}

// IngestInput webhook 载荷里除 secret 外的业务字段。
type IngestInput struct {
	FormType            string
	Data                json.RawMessage
	SubmissionTimestamp string
}

// submissionTimeLayouts 客户端时间戳的尝试格式。Apps Script 发过来的
// 字符串可能带时区也可能不带。
var submissionTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
}

// parseSubmissionTime 尽力解析客户端时间戳；解析不出来返回零值，
// 由 GORM/数据库默认填 created_at。不带时区的按 UTC 解释。
func parseSubmissionTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range submissionTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	log.Printf("notification ingest: unparseable submission_timestamp %q, falling back to store default", s)
	return time.Time{}
}

// Ingest 持久化一条表单通知。form_type 和 data 缺一不可；时间戳解析是
// 尽力而为，失败不拒绝。新行固定未读。落库成功后把行推给在线后台。
func (s *NotificationService) Ingest(in IngestInput) (*models.Notification, error) {
	formType := strings.TrimSpace(in.FormType)
	if formType == "" || len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: form_type and data are required", ErrValidation)
	}

	n := &models.Notification{
		FormType:  formType,
		Data:      datatypes.JSON(in.Data),
		IsRead:    false,
		CreatedAt: parseSubmissionTime(in.SubmissionTimestamp),
	}
	if err := s.dao.Create(n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordUpdateFailed, err)
	}

	if s.Notifier != nil {
		if b, err := json.Marshal(n); err == nil {
			s.Notifier(b)
		}
	}
	return n, nil
}

// MarkRead 置已读。幂等：已读的再标一次是无操作的成功；id 不存在报 not found。
func (s *NotificationService) MarkRead(id uint64) error {
	n, err := s.dao.FindByID(id)
	if err != nil {
		if s.dao.IsNotFound(err) {
			return fmt.Errorf("%w: notification id %d", ErrRecordNotFound, id)
		}
		return err
	}
	if n.IsRead {
		return nil
	}
	if err := s.dao.MarkRead(id); err != nil {
		return fmt.Errorf("%w: %v", ErrRecordUpdateFailed, err)
	}
	return nil
}

// ListUnread 未读通知，最新在前（仪表盘）。
func (s *NotificationService) ListUnread() ([]models.Notification, error) {
	return s.dao.ListUnread()
}

// UnreadCount 未读总数（全局角标）。
func (s *NotificationService) UnreadCount() (int64, error) {
	return s.dao.CountUnread()
}

// ListByFormType 某类表单的提交列表（证书/营业执照/举报页面）。
func (s *NotificationService) ListByFormType(formType string, limit, offset int) ([]models.Notification, error) {
	return s.dao.ListByFormType(formType, limit, offset)
}

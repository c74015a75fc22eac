package models

import (
	"errors"

	"gorm.io/gorm"
)

// NotificationDAO 封装表单通知的数据库操作
type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{db: db}
}

func (dao *NotificationDAO) Create(n *Notification) error {
	return dao.db.Create(n).Error
}

func (dao *NotificationDAO) FindByID(id uint64) (*Notification, error) {
	var n Notification
	if err := dao.db.Where("id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead 置已读。只写 is_read 一个字段。
func (dao *NotificationDAO) MarkRead(id uint64) error {
	return dao.db.Model(&Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

// ListUnread 未读通知，最新的在前。
func (dao *NotificationDAO) ListUnread() ([]Notification, error) {
	var items []Notification
	err := dao.db.Where("is_read = ?", false).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (dao *NotificationDAO) CountUnread() (int64, error) {
	var count int64
	err := dao.db.Model(&Notification{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

// ListByFormType 某类表单的全部提交，最新的在前（证书/营业执照/举报列表页）。
func (dao *NotificationDAO) ListByFormType(formType string, limit, offset int) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	var items []Notification
	err := dao.db.Where("form_type = ?", formType).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (dao *NotificationDAO) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

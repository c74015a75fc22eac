package models

import (
	"time"

	"gorm.io/datatypes"
)

// User 后台管理员账号
// Created once via /setup (or offline provisioning); never edited through
// the exposed surface.
type User struct {
	ID           uint64 `gorm:"primarykey"`
	UID          string `gorm:"size:36;uniqueIndex;not null"` // public user id
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`
	Name         string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:admin"`
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }

// ContentPost 公告/新闻共用的行结构。两种内容在结构上完全一致，只是落在
// 不同的表里；DAO 层通过表名区分，见 ContentDAO。
//
// ImageURL 非空时必须指向桶里真实存在的对象，这个不变量由
// service.ContentService 维护。
type ContentPost struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsActive   bool      `gorm:"index;default:true" json:"is_active"`
	CreatedBy  uint64    `gorm:"index" json:"created_by"`
	DatePosted time.Time `gorm:"index" json:"date_posted"`
	ImageURL   *string   `gorm:"size:500" json:"image_url"`
}

// BulletinPost / NewsPost 仅用于 AutoMigrate 的表名绑定。
type BulletinPost struct{ ContentPost }

func (BulletinPost) TableName() string { return "bulletin_posts" }

type NewsPost struct{ ContentPost }

func (NewsPost) TableName() string { return "news_posts" }

// PatchNote 系统更新日志
type PatchNote struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Version     string    `gorm:"size:50;not null" json:"version"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"column:date;index" json:"date"`
}

func (PatchNote) TableName() string { return "patch_notes" }

// SystemMaintenance 维护窗口公告
type SystemMaintenance struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"index;not null" json:"start_time"`
	EndTime     time.Time `gorm:"index;not null" json:"end_time"`
}

func (SystemMaintenance) TableName() string { return "system_maintenance" }

// Notification 表单提交通知（webhook 写入）。
// Data 为原样保存的提交内容；CreatedAt 优先取客户端提交时间，解析失败时
// 留零值交给 GORM/数据库默认；ReceivedAt 永远是服务端时间。
// IsRead 只有 false -> true 一个方向的迁移。
type Notification struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	FormType   string         `gorm:"size:64;index;not null" json:"form_type"`
	Data       datatypes.JSON `gorm:"type:json;not null" json:"data"`
	IsRead     bool           `gorm:"index;default:false" json:"is_read"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	ReceivedAt time.Time      `gorm:"autoCreateTime" json:"received_at"`
}

func (Notification) TableName() string { return "notifications" }

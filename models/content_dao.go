package models

import (
	"errors"

	"gorm.io/gorm"
)

// ContentDAO 封装公告/新闻的数据库操作。
// 两张表结构一致，所以用表名参数化，而不是复制两份 DAO。
type ContentDAO struct {
	db    *gorm.DB
	table string
}

func NewContentDAO(db *gorm.DB, table string) *ContentDAO {
	return &ContentDAO{db: db, table: table}
}

// TableName 返回该 DAO 绑定的表名。
func (dao *ContentDAO) TableName() string { return dao.table }

func (dao *ContentDAO) Create(post *ContentPost) error {
	return dao.db.Table(dao.table).Create(post).Error
}

func (dao *ContentDAO) FindByID(id uint64) (*ContentPost, error) {
	var p ContentPost
	if err := dao.db.Table(dao.table).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll 按发布时间倒序返回全部条目（后台列表页）。
func (dao *ContentDAO) ListAll() ([]ContentPost, error) {
	var posts []ContentPost
	err := dao.db.Table(dao.table).Order("date_posted DESC").Find(&posts).Error
	return posts, err
}

// ListActive 返回最新的 limit 条启用条目（公开首页）。
func (dao *ContentDAO) ListActive(limit int) ([]ContentPost, error) {
	if limit <= 0 {
		limit = 8
	}
	var posts []ContentPost
	err := dao.db.Table(dao.table).
		Where("is_active = ?", true).
		Order("date_posted DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// UpdateFields 按 id 局部更新。updates 为空时不发 SQL。
func (dao *ContentDAO) UpdateFields(id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return dao.db.Table(dao.table).Where("id = ?", id).Updates(updates).Error
}

func (dao *ContentDAO) Delete(id uint64) error {
	return dao.db.Table(dao.table).Where("id = ?", id).Delete(&ContentPost{}).Error
}

func (dao *ContentDAO) Count() (int64, error) {
	var count int64
	err := dao.db.Table(dao.table).Count(&count).Error
	return count, err
}

func (dao *ContentDAO) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

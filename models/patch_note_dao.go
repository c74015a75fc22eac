package models

import (
	"errors"

	"gorm.io/gorm"
)

// PatchNoteDAO 封装更新日志的查询
type PatchNoteDAO struct {
	db *gorm.DB
}

func NewPatchNoteDAO(db *gorm.DB) *PatchNoteDAO {
	return &PatchNoteDAO{db: db}
}

// ListAll 全部日志，按日期倒序。
func (dao *PatchNoteDAO) ListAll() ([]PatchNote, error) {
	var notes []PatchNote
	err := dao.db.Order("date DESC").Find(&notes).Error
	return notes, err
}

// Latest 最近一条日志；没有记录时返回 gorm.ErrRecordNotFound。
func (dao *PatchNoteDAO) Latest() (*PatchNote, error) {
	var n PatchNote
	if err := dao.db.Order("date DESC").First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (dao *PatchNoteDAO) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

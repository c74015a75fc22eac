package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MaintenanceDAO 封装维护窗口的查询
type MaintenanceDAO struct {
	db *gorm.DB
}

func NewMaintenanceDAO(db *gorm.DB) *MaintenanceDAO {
	return &MaintenanceDAO{db: db}
}

// ListAll 全部窗口，按开始时间倒序。
func (dao *MaintenanceDAO) ListAll() ([]SystemMaintenance, error) {
	var items []SystemMaintenance
	err := dao.db.Order("start_time DESC").Find(&items).Error
	return items, err
}

// ActiveAt now 落在 [start_time, end_time] 内的最近一条窗口。
func (dao *MaintenanceDAO) ActiveAt(now time.Time) (*SystemMaintenance, error) {
	var m SystemMaintenance
	err := dao.db.Where("start_time <= ? AND end_time >= ?", now, now).
		Order("start_time DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// NextUpcoming now 之后最先开始的窗口。
func (dao *MaintenanceDAO) NextUpcoming(now time.Time) (*SystemMaintenance, error) {
	var m SystemMaintenance
	err := dao.db.Where("start_time > ?", now).
		Order("start_time ASC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (dao *MaintenanceDAO) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package service

import (
	"fmt"
	"time"

	"github.com/lguportal/cms-sdk/models"
)

// MaintenanceService 维护窗口（只读查询）。
type MaintenanceService struct {
	*Service
	dao *models.MaintenanceDAO
}

func NewMaintenanceService(s *Service) *MaintenanceService {
	return &MaintenanceService{Service: s, dao: models.NewMaintenanceDAO(s.DB)}
}

// List 全部窗口，按开始时间倒序。
func (s *MaintenanceService) List() ([]models.SystemMaintenance, error) {
	return s.dao.ListAll()
}

// LatestRelevant 当前生效的窗口；没有则取最近的未来窗口；都没有返回
// (nil, nil)。
func (s *MaintenanceService) LatestRelevant(now time.Time) (*models.SystemMaintenance, error) {
	m, err := s.dao.ActiveAt(now)
	if err == nil {
		return m, nil
	}
	if !s.dao.IsNotFound(err) {
		return nil, fmt.Errorf("active maintenance window: %w", err)
	}

	m, err = s.dao.NextUpcoming(now)
	if err == nil {
		return m, nil
	}
	if !s.dao.IsNotFound(err) {
		return nil, fmt.Errorf("upcoming maintenance window: %w", err)
	}
	return nil, nil
}

package service

import (
	"fmt"

	"github.com/lguportal/cms-sdk/models"
)

// PatchNoteService 更新日志（只读查询，行由运维直接写库）。
type PatchNoteService struct {
	*Service
	dao *models.PatchNoteDAO
}

func NewPatchNoteService(s *Service) *PatchNoteService {
	return &PatchNoteService{Service: s, dao: models.NewPatchNoteDAO(s.DB)}
}

// List 全部日志，按日期倒序。
func (s *PatchNoteService) List() ([]models.PatchNote, error) {
	return s.dao.ListAll()
}

// Latest 最近一条；没有任何日志时返回 (nil, nil)。
func (s *PatchNoteService) Latest() (*models.PatchNote, error) {
	n, err := s.dao.Latest()
	if err != nil {
		if s.dao.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest patch note: %w", err)
	}
	return n, nil
}

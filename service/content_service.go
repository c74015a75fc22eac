package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lguportal/cms-sdk/models"
	"github.com/lguportal/cms-sdk/storage"
)

// ContentService 内容条目（公告/新闻）的核心工作流：
// 让数据库行和对象存储里的图片始终保持一致——行里的 image_url 非空时，
// 对应对象必须存在；图片对象最多被一条内容引用。
//
// 编辑路径刻意采用“先删旧图、再传新图”的顺序：桶不按条目隔离，先删能
// 保证不积累孤儿对象，代价是删成功后上传失败的窗口里，行仍指向已删除的
// 旧对象。这是记录在案的取舍，测试按该行为断言。
type ContentService struct {
	*Service
	dao    *models.ContentDAO
	bucket string
}

// NewContentService table 是内容表名（bulletin_posts / news_posts），
// bucket 是该类内容的图片桶。
func NewContentService(s *Service, table, bucket string) *ContentService {
	return &ContentService{
		Service: s,
		dao:     models.NewContentDAO(s.DB, table),
		bucket:  bucket,
	}
}

// Bucket 该服务绑定的图片桶名。
func (s *ContentService) Bucket() string { return s.bucket }

// ImageUpload 一次表单里的图片文件。
type ImageUpload struct {
	Filename    string
	Data        []byte
	ContentType string
}

// ContentInput 创建/编辑的表单输入。
// 图片意图三选一，优先级：RemoveImage > Image 非空 > 都没有（保持原图）。
type ContentInput struct {
	Title       string
	Content     string
	IsActive    bool
	Image       *ImageUpload
	RemoveImage bool
}

func (in *ContentInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	// 图片合法性必须在这里把关：Update 的换图路径先删旧图再传新图，
	// 进了那条路径之后再发现文件是空的就晚了。
	if in.Image != nil && (in.Image.Filename == "" || len(in.Image.Data) == 0) {
		return fmt.Errorf("%w: empty image file", ErrValidation)
	}
	return nil
}

// Get 按 id 取单条。
func (s *ContentService) Get(id uint64) (*models.ContentPost, error) {
	post, err := s.dao.FindByID(id)
	if err != nil {
		if s.dao.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s id %d", ErrRecordNotFound, s.dao.TableName(), id)
		}
		return nil, err
	}
	return post, nil
}

// List 后台列表（全部，按发布时间倒序）。
func (s *ContentService) List() ([]models.ContentPost, error) {
	return s.dao.ListAll()
}

// ListActive 公开列表（启用条目，最新的 limit 条）。
func (s *ContentService) ListActive(limit int) ([]models.ContentPost, error) {
	return s.dao.ListActive(limit)
}

// Count 条目总数（仪表盘）。
func (s *ContentService) Count() (int64, error) {
	return s.dao.Count()
}

// Create 创建条目。带图时先传图：传图失败则整个创建中止，不插行，
// 避免行指向不存在的对象。
func (s *ContentService) Create(ctx context.Context, authorID uint64, in ContentInput) (*models.ContentPost, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var imageURL *string
	if in.Image != nil {
		url, err := s.uploadImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	post := &models.ContentPost{
		Title:      in.Title,
		Content:    in.Content,
		IsActive:   in.IsActive,
		CreatedBy:  authorID,
		DatePosted: ManilaNow(),
		ImageURL:   imageURL,
	}
	if err := s.dao.Create(post); err != nil {
		// 行没插成功，刚传的图成为孤儿对象——可恢复的不一致，记日志即可。
		if imageURL != nil {
			log.Printf("content create: row insert failed after upload, orphaned object %s: %v", *imageURL, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrRecordUpdateFailed, err)
	}
	return post, nil
}

// Update 编辑条目。对图片意图做三态解析后提交一次行更新；
// 任一步失败都整体中止，不做部分更新。解析后与库内行完全一致时
// 直接短路成功，不发更新 SQL。
func (s *ContentService) Update(ctx context.Context, id uint64, in ContentInput) (*models.ContentPost, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	old, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	oldURL := old.ImageURL

	target := oldURL
	switch {
	case in.RemoveImage:
		if oldURL != nil {
			// 删不掉就整单放弃，旧图和行原样保留。
			if err := s.deleteObjectByURL(ctx, *oldURL); err != nil {
				return nil, err
			}
		}
		target = nil

	case in.Image != nil:
		if oldURL != nil {
			if err := s.deleteObjectByURL(ctx, *oldURL); err != nil {
				return nil, err
			}
		}
		url, err := s.uploadImage(ctx, in.Image)
		if err != nil {
			// 旧图已删、新图没传上去：行保持原样，image_url 暂时指向
			// 已不存在的对象（记录在案的窗口），不回写 null。
			return nil, err
		}
		target = &url
	}

	imageChanged := !strPtrEqual(target, oldURL)
	if !imageChanged && in.Title == old.Title && in.Content == old.Content && in.IsActive == old.IsActive {
		// 无变化，零写入。
		return old, nil
	}

	updates := map[string]any{
		"title":     in.Title,
		"content":   in.Content,
		"is_active": in.IsActive,
	}
	if imageChanged {
		updates["image_url"] = target // *string 为 nil 时写 NULL
	}
	if err := s.dao.UpdateFields(id, updates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordUpdateFailed, err)
	}

	old.Title = in.Title
	old.Content = in.Content
	old.IsActive = in.IsActive
	if imageChanged {
		old.ImageURL = target
	}
	return old, nil
}

// Delete 删除条目。图片删除是尽力而为：对象存储抖动不该把行也锁死在
// 库里，删图失败只记日志，行照删，最多漏一个对象。
func (s *ContentService) Delete(ctx context.Context, id uint64) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}

	if post.ImageURL != nil {
		if err := s.deleteObjectByURL(ctx, *post.ImageURL); err != nil {
			log.Printf("content delete: best-effort image removal failed for %s id %d: %v", s.dao.TableName(), id, err)
		}
	}

	if err := s.dao.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrRecordUpdateFailed, err)
	}
	return nil
}

// uploadImage 传图并返回公开 URL。img 已在 validate 里确认非空。
func (s *ContentService) uploadImage(ctx context.Context, img *ImageUpload) (string, error) {
	name := storage.MakeObjectName(img.Filename)
	if err := s.Store.Upload(ctx, s.bucket, name, img.Data, img.ContentType); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return s.Store.PublicURL(s.bucket, name), nil
}

// deleteObjectByURL 按公开 URL 删对象。批量删除接口对单个对象的失败不报
// hard error，只在每对象结果里带 error 标记，所以这里必须逐条解读：
// 空结果序列算成功，任何一条带 error 标记都算整体失败。
func (s *ContentService) deleteObjectByURL(ctx context.Context, imageURL string) error {
	name := storage.ObjectNameFromURL(imageURL, s.bucket)
	if name == "" {
		return fmt.Errorf("%w: cannot extract object name from %q (bucket %s)", ErrDeleteFailed, imageURL, s.bucket)
	}
	results, err := s.Store.Remove(ctx, s.bucket, []string{name})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	if !storage.RemoveOK(results) {
		return fmt.Errorf("%w: store reported per-object failure for %s", ErrDeleteFailed, name)
	}
	return nil
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

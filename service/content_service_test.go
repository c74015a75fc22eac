package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/lguportal/cms-sdk/storage"
)

// fakeStore 可配置失败点的对象存储桩，记录每次调用便于断言顺序。
type fakeStore struct {
	uploadErr     error
	removeErr     error
	removeResults []storage.RemoveResult

	uploads     []string // 记录 "bucket/name"
	removeCalls [][]string
	lastURL     string
}

func (f *fakeStore) Upload(_ context.Context, bucket, name string, data []byte, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, bucket+"/"+name)
	return nil
}

func (f *fakeStore) PublicURL(bucket, name string) string {
	f.lastURL = "https://store.local/" + bucket + "/" + name
	return f.lastURL
}

func (f *fakeStore) Remove(_ context.Context, _ string, names []string) ([]storage.RemoveResult, error) {
	f.removeCalls = append(f.removeCalls, names)
	if f.removeErr != nil {
		return nil, f.removeErr
	}
	return f.removeResults, nil
}

func strPtr(s string) *string { return &s }

func newTestContentService(t *testing.T, store storage.ObjectStore) (*ContentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, sqldb := newMockDB(t)
	t.Cleanup(func() { _ = sqldb.Close() })
	svc := NewContentService(&Service{DB: db, Store: store}, "bulletin_posts", "bulletin-images")
	return svc, mock
}

func contentColumns() []string {
	return []string{"id", "title", "content", "is_active", "created_by", "date_posted", "image_url"}
}

const oldImageURL = "https://store.local/bulletin-images/1700000000_old.png"

func expectFindByID(mock sqlmock.Sqlmock, imageURL *string) {
	var img any
	if imageURL != nil {
		img = *imageURL
	}
	mock.ExpectQuery("SELECT \\* FROM `bulletin_posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(contentColumns()).
			AddRow(1, "Road Closure", "Main St closed", true, 7, time.Now(), img))
}

func TestContentCreate_NoImage(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	mock.ExpectExec("INSERT INTO `bulletin_posts`").
		WillReturnResult(sqlmock.NewResult(42, 1))

	post, err := svc.Create(context.Background(), 7, ContentInput{Title: "Fiesta", Content: "Schedule inside", IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID != 42 {
		t.Errorf("ID = %d, want 42", post.ID)
	}
	if post.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil", *post.ImageURL)
	}
	if len(store.uploads) != 0 {
		t.Errorf("unexpected uploads: %v", store.uploads)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestContentCreate_WithImage(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	mock.ExpectExec("INSERT INTO `bulletin_posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	img := &ImageUpload{Filename: "poster.png", Data: []byte("png"), ContentType: "image/png"}
	post, err := svc.Create(context.Background(), 7, ContentInput{Title: "Fiesta", Content: "Schedule inside", IsActive: true, Image: img})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(store.uploads) != 1 {
		t.Fatalf("uploads = %v, want exactly one", store.uploads)
	}
	if !strings.HasPrefix(store.uploads[0], "bulletin-images/") || !strings.HasSuffix(store.uploads[0], "_poster.png") {
		t.Errorf("object name = %q, want bulletin-images/{unix}_poster.png", store.uploads[0])
	}
	if post.ImageURL == nil || *post.ImageURL != store.lastURL {
		t.Errorf("ImageURL = %v, want %q", post.ImageURL, store.lastURL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 传图失败时整个创建中止：不插行，不留下指向不存在对象的记录。
func TestContentCreate_UploadFails_NoInsert(t *testing.T) {
	store := &fakeStore{uploadErr: errors.New("bucket unreachable")}
	svc, mock := newTestContentService(t, store)

	img := &ImageUpload{Filename: "poster.png", Data: []byte("png"), ContentType: "image/png"}
	_, err := svc.Create(context.Background(), 7, ContentInput{Title: "Fiesta", Content: "x", IsActive: true, Image: img})
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("err = %v, want ErrUploadFailed", err)
	}
	// 没有任何 SQL 预期被登记，ExpectationsWereMet 同时保证没有发生 INSERT
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestContentCreate_Validation(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestContentService(t, store)
	for _, in := range []ContentInput{
		{Title: "", Content: "body"},
		{Title: "  ", Content: "body"},
		{Title: "title", Content: ""},
		{Title: "title", Content: "body", Image: &ImageUpload{Filename: "a.png"}},
		{Title: "title", Content: "body", Image: &ImageUpload{Data: []byte("png")}},
	} {
		if _, err := svc.Create(context.Background(), 1, in); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%+v) err = %v, want ErrValidation", in, err)
		}
	}
	if len(store.uploads) != 0 {
		t.Errorf("uploads = %v, want none for rejected input", store.uploads)
	}
}

// 换图时附带的文件是空的：ErrValidation，且旧图必须原样留着——
// 空文件要在进入删旧图/传新图的流程之前就被拦下。
func TestContentUpdate_ReplaceImage_EmptyFile(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	img := &ImageUpload{Filename: "new.png", ContentType: "image/png"}
	_, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, Image: img,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(store.removeCalls) != 0 {
		t.Errorf("removeCalls = %v, want none on validation failure", store.removeCalls)
	}
	if len(store.uploads) != 0 {
		t.Errorf("uploads = %v, want none", store.uploads)
	}
	// 没有登记任何 SQL 预期：校验失败连行都不该读
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// remove_image 意图：旧对象删成功后行里的 image_url 置 NULL。
func TestContentUpdate_RemoveImage(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))
	// map 更新键按字母序：content, image_url, is_active, title
	mock.ExpectExec("UPDATE `bulletin_posts` SET").
		WithArgs("Main St closed", nil, true, "Road Closure", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	post, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, RemoveImage: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if post.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil", *post.ImageURL)
	}
	if len(store.removeCalls) != 1 || store.removeCalls[0][0] != "1700000000_old.png" {
		t.Errorf("removeCalls = %v, want old object name extracted from URL", store.removeCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 删旧图失败（硬错误）时整单中止：零写入，行和对象都原样。
func TestContentUpdate_RemoveImage_DeleteFails(t *testing.T) {
	store := &fakeStore{removeErr: errors.New("store down")}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))

	_, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, RemoveImage: true,
	})
	if !errors.Is(err, ErrDeleteFailed) {
		t.Fatalf("err = %v, want ErrDeleteFailed", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 批量删除接口的逐对象 error 标记也必须算失败：结果序列非空且带 error 即中止。
func TestContentUpdate_RemoveImage_PerObjectError(t *testing.T) {
	store := &fakeStore{removeResults: []storage.RemoveResult{
		{Name: "1700000000_old.png", Error: strPtr("object locked")},
	}}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))

	_, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, RemoveImage: true,
	})
	if !errors.Is(err, ErrDeleteFailed) {
		t.Fatalf("err = %v, want ErrDeleteFailed", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 本来就没图时 remove_image 不触发任何存储调用，只更新其它字段。
func TestContentUpdate_RemoveImage_NoExisting(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, nil)
	mock.ExpectExec("UPDATE `bulletin_posts` SET").
		WithArgs("updated body", true, "Road Closure", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "updated body", IsActive: true, RemoveImage: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(store.removeCalls) != 0 {
		t.Errorf("removeCalls = %v, want none", store.removeCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 换图：先删旧图再传新图，行一次性指向新 URL。
func TestContentUpdate_ReplaceImage(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))
	mock.ExpectExec("UPDATE `bulletin_posts` SET").
		WithArgs("Main St closed", sqlmock.AnyArg(), true, "Road Closure", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	img := &ImageUpload{Filename: "new.png", Data: []byte("png"), ContentType: "image/png"}
	post, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, Image: img,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(store.removeCalls) != 1 {
		t.Fatalf("removeCalls = %v, want old image removed first", store.removeCalls)
	}
	if len(store.uploads) != 1 {
		t.Fatalf("uploads = %v, want one", store.uploads)
	}
	if post.ImageURL == nil || *post.ImageURL != store.lastURL {
		t.Errorf("ImageURL = %v, want %q", post.ImageURL, store.lastURL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 换图时删旧图失败：新图不上传，零写入。
func TestContentUpdate_ReplaceImage_DeleteFails(t *testing.T) {
	store := &fakeStore{removeResults: []storage.RemoveResult{
		{Name: "1700000000_old.png", Error: strPtr("denied")},
	}}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))

	img := &ImageUpload{Filename: "new.png", Data: []byte("png"), ContentType: "image/png"}
	_, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, Image: img,
	})
	if !errors.Is(err, ErrDeleteFailed) {
		t.Fatalf("err = %v, want ErrDeleteFailed", err)
	}
	if len(store.uploads) != 0 {
		t.Errorf("uploads = %v, want none after delete failure", store.uploads)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 换图时旧图已删、新图上传失败：不回写行，image_url 保留旧 URL（记录在案的窗口）。
func TestContentUpdate_ReplaceImage_UploadFailsAfterDelete(t *testing.T) {
	store := &fakeStore{uploadErr: errors.New("quota exceeded")}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))

	img := &ImageUpload{Filename: "new.png", Data: []byte("png"), ContentType: "image/png"}
	_, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true, Image: img,
	})
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("err = %v, want ErrUploadFailed", err)
	}
	if len(store.removeCalls) != 1 {
		t.Errorf("removeCalls = %v, want old image already removed", store.removeCalls)
	}
	// 没有 UPDATE 预期：行保持旧值，包括已失效的 image_url
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 三态解析结果与库内行完全一致时短路成功，不发 SQL。
func TestContentUpdate_NoOp(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))

	post, err := svc.Update(context.Background(), 1, ContentInput{
		Title: "Road Closure", Content: "Main St closed", IsActive: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if post.ImageURL == nil || *post.ImageURL != oldImageURL {
		t.Errorf("ImageURL = %v, want untouched", post.ImageURL)
	}
	if len(store.removeCalls) != 0 || len(store.uploads) != 0 {
		t.Error("no-op edit must not touch the object store")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestContentUpdate_NotFound(t *testing.T) {
	svc, mock := newTestContentService(t, &fakeStore{})

	mock.ExpectQuery("SELECT \\* FROM `bulletin_posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(contentColumns()))

	_, err := svc.Update(context.Background(), 99, ContentInput{Title: "t", Content: "c"})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

// 删除条目时删图只是尽力而为：存储失败不阻止行删除。
func TestContentDelete_BestEffortImage(t *testing.T) {
	store := &fakeStore{removeErr: errors.New("store down")}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, strPtr(oldImageURL))
	mock.ExpectExec("DELETE FROM `bulletin_posts` WHERE id = \\?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.removeCalls) != 1 {
		t.Errorf("removeCalls = %v, want removal attempted", store.removeCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestContentDelete_NoImage(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)

	expectFindByID(mock, nil)
	mock.ExpectExec("DELETE FROM `bulletin_posts` WHERE id = \\?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.removeCalls) != 0 {
		t.Errorf("removeCalls = %v, want none", store.removeCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// 完整生命周期：无图创建 → 附图 → 去图，验证存储调用与行写入的配对顺序。
func TestContentLifecycle(t *testing.T) {
	store := &fakeStore{}
	svc, mock := newTestContentService(t, store)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO `bulletin_posts`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	post, err := svc.Create(ctx, 7, ContentInput{Title: "Notice", Content: "v1", IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 附图：无旧图可删，只传新图
	mock.ExpectQuery("SELECT \\* FROM `bulletin_posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(contentColumns()).
			AddRow(post.ID, "Notice", "v1", true, 7, time.Now(), nil))
	mock.ExpectExec("UPDATE `bulletin_posts` SET").
		WithArgs("v1", sqlmock.AnyArg(), true, "Notice", post.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	img := &ImageUpload{Filename: "map.png", Data: []byte("png"), ContentType: "image/png"}
	post, err = svc.Update(ctx, post.ID, ContentInput{Title: "Notice", Content: "v1", IsActive: true, Image: img})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(store.removeCalls) != 0 {
		t.Fatalf("attach must not call Remove, got %v", store.removeCalls)
	}
	attachedURL := *post.ImageURL

	// 去图：删刚传的对象并把列置 NULL
	mock.ExpectQuery("SELECT \\* FROM `bulletin_posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(contentColumns()).
			AddRow(post.ID, "Notice", "v1", true, 7, time.Now(), attachedURL))
	mock.ExpectExec("UPDATE `bulletin_posts` SET").
		WithArgs("v1", nil, true, "Notice", post.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	post, err = svc.Update(ctx, post.ID, ContentInput{Title: "Notice", Content: "v1", IsActive: true, RemoveImage: true})
	if err != nil {
		t.Fatalf("detach: %v", err)
	}
	if post.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil", *post.ImageURL)
	}
	wantName := strings.TrimPrefix(attachedURL, "https://store.local/bulletin-images/")
	if len(store.removeCalls) != 1 || store.removeCalls[0][0] != wantName {
		t.Errorf("removeCalls = %v, want [[%s]]", store.removeCalls, wantName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

package cms_sdk

import (
	"log"
	"sync"

	"github.com/lguportal/cms-sdk/cons"
	"github.com/lguportal/cms-sdk/middleware"
	"github.com/lguportal/cms-sdk/service"

	"github.com/gin-gonic/gin"
)

// CMSEngine 市政门户内容管理引擎：公告/新闻的图文同步工作流、
// 更新日志与维护窗口查询、表单提交通知（webhook 落库 + WS 推送）、
// 后台账号与会话。
type CMSEngine struct {
	config *Config

	UserService         *service.UserService
	AuthService         *service.AuthService
	BulletinService     *service.ContentService
	NewsService         *service.ContentService
	NotificationService *service.NotificationService
	PatchNoteService    *service.PatchNoteService
	MaintenanceService  *service.MaintenanceService

	Hub *NotificationHub
}

var (
	Instance *CMSEngine
	once     sync.Once
)

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) *CMSEngine {
	once.Do(func() {
		c := &Config{
			BulletinBucket: cons.BucketBulletinImages,
			NewsBucket:     cons.BucketNewsImages,
		}
		for _, opt := range opts {
			opt(c)
		}

		// 存储凭据缺失是启动期致命错误，不降级运行。
		if c.DB == nil {
			log.Fatal("cms-sdk: database handle is required (WithDB)")
		}
		if c.Store == nil {
			log.Fatal("cms-sdk: object store is required (WithObjectStore)")
		}
		if c.RDB == nil {
			log.Println("cms-sdk: redis not configured, admin login is unavailable")
		}

		Instance = &CMSEngine{config: c}

		// 初始化通知推送 Hub
		Instance.Hub = NewNotificationHub()
		go Instance.Hub.Run()

		// 初始化基础 Service，注入 WS 推送回调
		baseService := &service.Service{
			DB:       c.DB,
			RDB:      c.RDB,
			Store:    c.Store,
			Notifier: Instance.Hub.Broadcast,
			Debug:    c.Service.Debug,
		}

		Instance.UserService = service.NewUserService(baseService)
		Instance.AuthService = service.NewAuthService(service.NewTokenService(c.RDB))
		Instance.BulletinService = service.NewContentService(baseService, "bulletin_posts", c.BulletinBucket)
		Instance.NewsService = service.NewContentService(baseService, "news_posts", c.NewsBucket)
		Instance.NotificationService = service.NewNotificationService(baseService)
		Instance.PatchNoteService = service.NewPatchNoteService(baseService)
		Instance.MaintenanceService = service.NewMaintenanceService(baseService)

		// 迁移表
		if err := Instance.AutoMigrate(); err != nil {
			log.Printf("AutoMigrate failed: %v", err)
		}
	})

	return Instance
}

// GinAuthMiddleware 返回配置好的后台鉴权中间件。
//
// 使用示例:
//
//	engine := cms_sdk.NewEngine(...)
//	admin := r.Group("/admin")
//	admin.Use(engine.GinAuthMiddleware())
func (c *CMSEngine) GinAuthMiddleware() gin.HandlerFunc {
	return middleware.GinAuthMiddleware(c.AuthService)
}
